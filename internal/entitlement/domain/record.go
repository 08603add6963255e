package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status labels as stored on a user profile.
const (
	StatusTrial     = "trial"
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Record is the subscription data stored for a user. Nil fields were never
// recorded.
type Record struct {
	UserID              uuid.UUID
	Status              *string
	TrialEndDate        *time.Time
	SubscriptionEndDate *time.Time
}
