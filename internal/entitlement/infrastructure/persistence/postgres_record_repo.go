package persistence

import (
	"context"

	"github.com/felixgeelhaar/pawsit/internal/entitlement/domain"
	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRecordRepository implements domain.RecordRepository with PostgreSQL.
type PostgresRecordRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRecordRepository creates a new repository.
func NewPostgresRecordRepository(pool *pgxpool.Pool) *PostgresRecordRepository {
	return &PostgresRecordRepository{pool: pool}
}

// FindByUserID returns the user's subscription fields.
func (r *PostgresRecordRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Record, error) {
	query := `
		SELECT user_id, subscription_status, trial_end_date, subscription_end_date
		FROM profiles
		WHERE user_id = $1
	`
	var record domain.Record
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&record.UserID,
		&record.Status,
		&record.TrialEndDate,
		&record.SubscriptionEndDate,
	)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

var _ domain.RecordRepository = (*PostgresRecordRepository)(nil)
