package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/entitlement/domain"
	"github.com/felixgeelhaar/pawsit/internal/shared/infrastructure/database"
	"github.com/google/uuid"
)

// timestampLayouts are the text forms accepted for stored instants.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// SQLiteRecordRepository implements domain.RecordRepository with SQLite.
type SQLiteRecordRepository struct {
	db *sql.DB
}

// NewSQLiteRecordRepository creates a new repository.
func NewSQLiteRecordRepository(db *sql.DB) *SQLiteRecordRepository {
	return &SQLiteRecordRepository{db: db}
}

// FindByUserID returns the user's subscription fields. An unreadable
// timestamp is an error rather than a missing value.
func (r *SQLiteRecordRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Record, error) {
	query := `
		SELECT subscription_status, trial_end_date, subscription_end_date
		FROM profiles
		WHERE user_id = ?
	`
	var status, trialEnd, subscriptionEnd sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID.String()).Scan(&status, &trialEnd, &subscriptionEnd)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	record := &domain.Record{UserID: userID}
	if status.Valid {
		record.Status = &status.String
	}
	if record.TrialEndDate, err = parseTimestamp(trialEnd); err != nil {
		return nil, fmt.Errorf("trial_end_date: %w", err)
	}
	if record.SubscriptionEndDate, err = parseTimestamp(subscriptionEnd); err != nil {
		return nil, fmt.Errorf("subscription_end_date: %w", err)
	}
	return record, nil
}

func parseTimestamp(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v.String); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unreadable timestamp %q", v.String)
}

var _ domain.RecordRepository = (*SQLiteRecordRepository)(nil)
