package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// OccupyingStatuses are the booking statuses that take part in occupancy.
var OccupyingStatuses = []BookingStatus{BookingPending, BookingAccepted}

// IsValid reports whether s is a known status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingAccepted, BookingRejected, BookingCancelled, BookingCompleted:
		return true
	default:
		return false
	}
}

// Occupies reports whether bookings in this status hold dates.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingAccepted
}

// Booking is a stored booking request between a pet owner and a sitter.
type Booking struct {
	ID        uuid.UUID
	SitterID  uuid.UUID
	OwnerID   uuid.UUID
	Range     DateRange
	Status    BookingStatus
	CreatedAt time.Time
}

// BlockedDate is a date a sitter has manually excluded.
type BlockedDate struct {
	ID        uuid.UUID
	SitterID  uuid.UUID
	Date      Date
	CreatedAt time.Time
}
