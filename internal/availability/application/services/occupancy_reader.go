package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/felixgeelhaar/pawsit/pkg/observability"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

// ErrStoreUnavailable is reported when no repository is configured.
var ErrStoreUnavailable = errors.New("availability store unavailable")

// OccupancyCache stores computed occupancy for a sitter and window.
type OccupancyCache interface {
	Get(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) (domain.Occupancy, bool, error)
	Set(ctx context.Context, sitterID uuid.UUID, window domain.DateRange, occ domain.Occupancy) error
}

// ReaderConfig configures the store circuit breaker.
type ReaderConfig struct {
	BreakerEnabled   bool
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

// DefaultReaderConfig returns the production breaker settings.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		BreakerEnabled:   true,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

// OccupancyReader loads a sitter's occupancy from the store.
//
// Reads fail open: when the store errors, or the breaker is open, Read
// returns empty occupancy so booking flows are never blocked on an
// availability lookup. Only successful reads are cached.
type OccupancyReader struct {
	blocked  domain.BlockedDateRepository
	bookings domain.BookingRepository
	cache    OccupancyCache
	breaker  *gobreaker.CircuitBreaker[domain.Occupancy]
	metrics  observability.Metrics
	logger   *slog.Logger
}

// NewOccupancyReader creates a reader. cache may be nil.
func NewOccupancyReader(
	blocked domain.BlockedDateRepository,
	bookings domain.BookingRepository,
	cache OccupancyCache,
	cfg ReaderConfig,
	metrics observability.Metrics,
	logger *slog.Logger,
) *OccupancyReader {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	r := &OccupancyReader{
		blocked:  blocked,
		bookings: bookings,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
	if cfg.BreakerEnabled {
		r.breaker = newStoreBreaker(cfg, metrics, logger)
	}
	return r
}

func newStoreBreaker(cfg ReaderConfig, metrics observability.Metrics, logger *slog.Logger) *gobreaker.CircuitBreaker[domain.Occupancy] {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	settings := gobreaker.Settings{
		Name:        "availability-store",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("store circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
			metrics.Gauge(observability.MetricAvailabilityBreakerState, float64(to))
		},
		// A caller giving up is not a store fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	return gobreaker.NewCircuitBreaker[domain.Occupancy](settings)
}

// Read returns the sitter's occupancy for window. It never fails.
// A cached answer may be up to the cache TTL old; use ReadFresh when a
// stale answer could grant dates that were just taken.
func (r *OccupancyReader) Read(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) domain.Occupancy {
	return r.read(ctx, sitterID, window, true)
}

// ReadFresh is Read without the cache lookup. A successful read still
// refreshes the cache.
func (r *OccupancyReader) ReadFresh(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) domain.Occupancy {
	return r.read(ctx, sitterID, window, false)
}

func (r *OccupancyReader) read(ctx context.Context, sitterID uuid.UUID, window domain.DateRange, useCache bool) domain.Occupancy {
	if r == nil {
		return domain.EmptyOccupancy()
	}

	if useCache && r.cache != nil {
		occ, ok, err := r.cache.Get(ctx, sitterID, window)
		if err != nil {
			r.logger.DebugContext(ctx, "occupancy cache read failed", observability.ErrorKey, err)
		} else if ok {
			r.metrics.Counter(observability.MetricAvailabilityCacheHits, 1)
			return occ
		}
	}

	timer := observability.StartTimer("availability.load").WithMetrics(r.metrics)
	occ, err := r.load(ctx, sitterID, window)
	timer.Stop()
	if err != nil {
		r.metrics.Counter(observability.MetricAvailabilityStoreFailures, 1)
		r.logger.WarnContext(ctx, "availability store read failed, assuming no blocks or bookings",
			observability.SitterIDKey, sitterID.String(),
			"window", window.String(),
			observability.ErrorKey, err,
		)
		return domain.EmptyOccupancy()
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, sitterID, window, occ); err != nil {
			r.logger.DebugContext(ctx, "occupancy cache write failed", observability.ErrorKey, err)
		}
	}
	return occ
}

func (r *OccupancyReader) load(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) (domain.Occupancy, error) {
	if r.breaker == nil {
		return r.fetch(ctx, sitterID, window)
	}
	return r.breaker.Execute(func() (domain.Occupancy, error) {
		return r.fetch(ctx, sitterID, window)
	})
}

func (r *OccupancyReader) fetch(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) (domain.Occupancy, error) {
	if r.blocked == nil || r.bookings == nil {
		return domain.Occupancy{}, ErrStoreUnavailable
	}

	blocked, err := r.blocked.ListInWindow(ctx, sitterID, window)
	if err != nil {
		return domain.Occupancy{}, fmt.Errorf("list blocked dates: %w", err)
	}

	bookings, err := r.bookings.ListIntersecting(ctx, sitterID, window, domain.OccupyingStatuses)
	if err != nil {
		return domain.Occupancy{}, fmt.Errorf("list bookings: %w", err)
	}

	return domain.BuildOccupancy(window, blocked, bookings), nil
}
