package queries

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/felixgeelhaar/pawsit/pkg/observability"
	"github.com/google/uuid"
)

// AvailabilityDTO is the answer to a range availability check.
type AvailabilityDTO struct {
	Available    bool   `json:"available"`
	Reason       string `json:"reason,omitempty"`
	ConflictDate string `json:"conflict_date,omitempty"`
}

// CheckRangeQuery asks whether a sitter can take the requested dates.
type CheckRangeQuery struct {
	SitterID uuid.UUID
	Range    domain.DateRange
}

// CheckRangeHandler handles the CheckRangeQuery.
type CheckRangeHandler struct {
	reader  OccupancyReader
	metrics observability.Metrics
	logger  *slog.Logger
}

// NewCheckRangeHandler creates a new CheckRangeHandler.
func NewCheckRangeHandler(reader OccupancyReader, metrics observability.Metrics, logger *slog.Logger) *CheckRangeHandler {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckRangeHandler{reader: reader, metrics: metrics, logger: logger}
}

// Handle executes the CheckRangeQuery. It always returns a result.
// Invalid and over-long ranges are refused without reading the store.
// Reads bypass the occupancy cache when the reader supports it.
func (h *CheckRangeHandler) Handle(ctx context.Context, query CheckRangeQuery) AvailabilityDTO {
	var decision domain.Decision
	switch {
	case !query.Range.IsValid():
		decision = domain.EmptyOccupancy().Check(query.Range)
	case domain.CheckSpan(query.Range) != nil:
		decision = domain.Decision{Available: false, Reason: domain.ReasonRangeTooLong}
	default:
		decision = h.read(ctx, query.SitterID, query.Range).Check(query.Range)
	}

	result := "available"
	if !decision.Available {
		result = decision.Reason
	}
	h.metrics.Counter(observability.MetricAvailabilityChecks, 1, observability.T("result", result))
	h.logger.DebugContext(ctx, "range availability checked",
		observability.SitterIDKey, query.SitterID.String(),
		"range", query.Range.String(),
		"available", decision.Available,
		"reason", decision.Reason,
	)

	return AvailabilityDTO{
		Available:    decision.Available,
		Reason:       decision.Reason,
		ConflictDate: decision.ConflictDate.String(),
	}
}

func (h *CheckRangeHandler) read(ctx context.Context, sitterID uuid.UUID, requested domain.DateRange) domain.Occupancy {
	if fresh, ok := h.reader.(FreshOccupancyReader); ok {
		return fresh.ReadFresh(ctx, sitterID, requested)
	}
	return h.reader.Read(ctx, sitterID, requested)
}
