package queries

import (
	"context"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
)

// CalendarDayDTO is one date of a sitter's calendar.
type CalendarDayDTO struct {
	Date      string `json:"date"`
	Occupancy string `json:"occupancy"`
	Blocked   bool   `json:"blocked"`
	Booked    bool   `json:"booked"`
	Pending   bool   `json:"pending"`
}

// GetCalendarQuery contains the parameters for a calendar view.
type GetCalendarQuery struct {
	SitterID uuid.UUID
	From     *domain.Date
	To       *domain.Date
}

// GetCalendarHandler handles the GetCalendarQuery.
type GetCalendarHandler struct {
	reader OccupancyReader
	policy WindowPolicy
}

// NewGetCalendarHandler creates a new GetCalendarHandler.
func NewGetCalendarHandler(reader OccupancyReader, policy WindowPolicy) *GetCalendarHandler {
	return &GetCalendarHandler{reader: reader, policy: policy}
}

// Handle executes the GetCalendarQuery.
func (h *GetCalendarHandler) Handle(ctx context.Context, query GetCalendarQuery) ([]CalendarDayDTO, error) {
	window, err := h.policy.Resolve(query.From, query.To)
	if err != nil {
		return nil, err
	}

	occ := h.reader.Read(ctx, query.SitterID, window)
	days := occ.Calendar(window)

	dtos := make([]CalendarDayDTO, len(days))
	for i, day := range days {
		dtos[i] = CalendarDayDTO{
			Date:      day.Date.String(),
			Occupancy: string(day.Occupancy),
			Blocked:   day.Flags.Blocked,
			Booked:    day.Flags.Booked,
			Pending:   day.Flags.Pending,
		}
	}
	return dtos, nil
}
