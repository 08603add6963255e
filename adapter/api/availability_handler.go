package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/felixgeelhaar/pawsit/internal/availability/application/queries"
	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
)

// AvailabilityHandler handles sitter availability requests.
type AvailabilityHandler struct {
	computeOccupancy *queries.ComputeOccupancyHandler
	checkRange       *queries.CheckRangeHandler
	getCalendar      *queries.GetCalendarHandler
	logger           *slog.Logger
}

// AvailabilityHandlerConfig holds dependencies for the availability handler.
type AvailabilityHandlerConfig struct {
	ComputeOccupancy *queries.ComputeOccupancyHandler
	CheckRange       *queries.CheckRangeHandler
	GetCalendar      *queries.GetCalendarHandler
	Logger           *slog.Logger
}

// NewAvailabilityHandler creates a new availability handler.
func NewAvailabilityHandler(cfg AvailabilityHandlerConfig) *AvailabilityHandler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &AvailabilityHandler{
		computeOccupancy: cfg.ComputeOccupancy,
		checkRange:       cfg.CheckRange,
		getCalendar:      cfg.GetCalendar,
		logger:           cfg.Logger,
	}
}

// GetOccupancy handles GET /api/v1/sitters/{sitterID}/occupancy
func (h *AvailabilityHandler) GetOccupancy(w http.ResponseWriter, r *http.Request) {
	sitterID, ok := parseUUIDPath(w, r, "sitterID")
	if !ok {
		return
	}
	from, to, ok := parseWindowParams(w, r)
	if !ok {
		return
	}

	result, err := h.computeOccupancy.Handle(r.Context(), queries.ComputeOccupancyQuery{
		SitterID: sitterID,
		From:     from,
		To:       to,
	})
	if err != nil {
		writeDateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetCalendar handles GET /api/v1/sitters/{sitterID}/calendar
func (h *AvailabilityHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	sitterID, ok := parseUUIDPath(w, r, "sitterID")
	if !ok {
		return
	}
	from, to, ok := parseWindowParams(w, r)
	if !ok {
		return
	}

	days, err := h.getCalendar.Handle(r.Context(), queries.GetCalendarQuery{
		SitterID: sitterID,
		From:     from,
		To:       to,
	})
	if err != nil {
		writeDateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sitter_id": sitterID,
		"days":      days,
	})
}

// CheckRange handles GET /api/v1/sitters/{sitterID}/availability
//
// An inverted range is answered, not rejected: it is unavailable with
// reason "invalid date range".
func (h *AvailabilityHandler) CheckRange(w http.ResponseWriter, r *http.Request) {
	sitterID, ok := parseUUIDPath(w, r, "sitterID")
	if !ok {
		return
	}

	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam == "" || endParam == "" {
		writeError(w, http.StatusBadRequest, "Query parameters 'start' and 'end' are required")
		return
	}
	start, err := domain.ParseDate(startParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := domain.ParseDate(endParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requested := domain.DateRange{Start: start, End: end}
	if err := domain.CheckSpan(requested); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.checkRange.Handle(r.Context(), queries.CheckRangeQuery{
		SitterID: sitterID,
		Range:    requested,
	})
	writeJSON(w, http.StatusOK, result)
}

func parseUUIDPath(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parseWindowParams reads the optional from/to query parameters.
func parseWindowParams(w http.ResponseWriter, r *http.Request) (*domain.Date, *domain.Date, bool) {
	from, err := parseOptionalDate(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}
	to, err := parseOptionalDate(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}
	return from, to, true
}

func parseOptionalDate(r *http.Request, name string) (*domain.Date, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func writeDateError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidDateRange) ||
		errors.Is(err, domain.ErrInvalidDate) ||
		errors.Is(err, domain.ErrWindowTooLarge) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "Failed to compute occupancy")
}
