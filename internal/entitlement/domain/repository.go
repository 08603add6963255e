package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned when a user has no stored profile.
var ErrRecordNotFound = errors.New("entitlement record not found")

// RecordRepository reads stored entitlement records.
type RecordRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Record, error)
}
