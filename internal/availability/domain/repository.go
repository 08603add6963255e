package domain

import (
	"context"

	"github.com/google/uuid"
)

// BlockedDateRepository reads a sitter's manually blocked dates.
type BlockedDateRepository interface {
	// ListInWindow returns the sitter's blocked dates falling inside window.
	ListInWindow(ctx context.Context, sitterID uuid.UUID, window DateRange) ([]BlockedDate, error)
}

// BookingRepository reads a sitter's bookings.
type BookingRepository interface {
	// ListIntersecting returns bookings in one of statuses whose range
	// intersects window (end >= window start and start <= window end).
	ListIntersecting(ctx context.Context, sitterID uuid.UUID, window DateRange, statuses []BookingStatus) ([]Booking, error)
}
