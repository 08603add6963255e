package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
)

// SQLiteBlockedDateRepository implements domain.BlockedDateRepository with SQLite.
// Dates are stored as YYYY-MM-DD text, which orders and compares correctly.
type SQLiteBlockedDateRepository struct {
	db *sql.DB
}

// NewSQLiteBlockedDateRepository creates a new repository.
func NewSQLiteBlockedDateRepository(db *sql.DB) *SQLiteBlockedDateRepository {
	return &SQLiteBlockedDateRepository{db: db}
}

// ListInWindow returns the sitter's blocked dates inside window.
func (r *SQLiteBlockedDateRepository) ListInWindow(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) ([]domain.BlockedDate, error) {
	query := `
		SELECT id, sitter_id, blocked_date, created_at
		FROM blocked_dates
		WHERE sitter_id = ? AND blocked_date BETWEEN ? AND ?
		ORDER BY blocked_date
	`
	rows, err := r.db.QueryContext(ctx, query, sitterID.String(), window.Start.String(), window.End.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocked := make([]domain.BlockedDate, 0)
	for rows.Next() {
		var idStr, sitterStr, dateStr, createdAt string
		if err := rows.Scan(&idStr, &sitterStr, &dateStr, &createdAt); err != nil {
			return nil, err
		}
		b, err := blockedDateFromRow(idStr, sitterStr, dateStr, createdAt)
		if err != nil {
			return nil, err
		}
		blocked = append(blocked, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return blocked, nil
}

func blockedDateFromRow(idStr, sitterStr, dateStr, createdAt string) (domain.BlockedDate, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.BlockedDate{}, fmt.Errorf("blocked date id %q: %w", idStr, err)
	}
	sitterID, err := uuid.Parse(sitterStr)
	if err != nil {
		return domain.BlockedDate{}, fmt.Errorf("blocked date sitter id %q: %w", sitterStr, err)
	}
	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return domain.BlockedDate{}, err
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return domain.BlockedDate{}, fmt.Errorf("blocked date created_at %q: %w", createdAt, err)
	}
	return domain.BlockedDate{ID: id, SitterID: sitterID, Date: date, CreatedAt: created}, nil
}

var _ domain.BlockedDateRepository = (*SQLiteBlockedDateRepository)(nil)
