package queries

import (
	"context"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
)

// OccupancyDTO lists a sitter's occupied dates as YYYY-MM-DD strings.
type OccupancyDTO struct {
	SitterID uuid.UUID `json:"sitter_id"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	Blocked  []string  `json:"blocked"`
	Booked   []string  `json:"booked"`
	Pending  []string  `json:"pending"`
}

// ComputeOccupancyQuery contains the parameters for computing occupancy.
// Nil bounds fall back to the window policy.
type ComputeOccupancyQuery struct {
	SitterID uuid.UUID
	From     *domain.Date
	To       *domain.Date
}

// ComputeOccupancyHandler handles the ComputeOccupancyQuery.
type ComputeOccupancyHandler struct {
	reader OccupancyReader
	policy WindowPolicy
}

// NewComputeOccupancyHandler creates a new ComputeOccupancyHandler.
func NewComputeOccupancyHandler(reader OccupancyReader, policy WindowPolicy) *ComputeOccupancyHandler {
	return &ComputeOccupancyHandler{reader: reader, policy: policy}
}

// Handle executes the ComputeOccupancyQuery. The only error is an invalid
// window; store failures produce empty sets.
func (h *ComputeOccupancyHandler) Handle(ctx context.Context, query ComputeOccupancyQuery) (*OccupancyDTO, error) {
	window, err := h.policy.Resolve(query.From, query.To)
	if err != nil {
		return nil, err
	}

	occ := h.reader.Read(ctx, query.SitterID, window)

	return &OccupancyDTO{
		SitterID: query.SitterID,
		From:     window.Start.String(),
		To:       window.End.String(),
		Blocked:  occ.Blocked.Strings(),
		Booked:   occ.Booked.Strings(),
		Pending:  occ.Pending.Strings(),
	}, nil
}
