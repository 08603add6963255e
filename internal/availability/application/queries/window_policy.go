package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
)

// OccupancyReader loads a sitter's occupancy. Implementations never fail;
// an unreachable store reads as empty occupancy.
type OccupancyReader interface {
	Read(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) domain.Occupancy
}

// FreshOccupancyReader reads straight from the store, skipping any cache.
// Range checks use it so a booking accepted moments ago is seen.
type FreshOccupancyReader interface {
	ReadFresh(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) domain.Occupancy
}

// WindowPolicy decides the default query window.
type WindowPolicy struct {
	// Days is the default window length.
	Days int
	// Location is the zone in which today is determined.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// DefaultWindowPolicy returns a 90-day window starting today in UTC.
func DefaultWindowPolicy() WindowPolicy {
	return WindowPolicy{Days: domain.DefaultWindowDays, Location: time.UTC, Now: time.Now}
}

// Today returns the current calendar date.
func (p WindowPolicy) Today() domain.Date {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return domain.DateOf(now(), p.Location)
}

// Resolve fills in missing window bounds.
func (p WindowPolicy) Resolve(from, to *domain.Date) (domain.DateRange, error) {
	return domain.ResolveWindow(from, to, p.Today(), p.Days)
}
