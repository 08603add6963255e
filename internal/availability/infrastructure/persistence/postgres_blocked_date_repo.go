package persistence

import (
	"context"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBlockedDateRepository implements domain.BlockedDateRepository with PostgreSQL.
type PostgresBlockedDateRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlockedDateRepository creates a new repository.
func NewPostgresBlockedDateRepository(pool *pgxpool.Pool) *PostgresBlockedDateRepository {
	return &PostgresBlockedDateRepository{pool: pool}
}

// ListInWindow returns the sitter's blocked dates inside window.
func (r *PostgresBlockedDateRepository) ListInWindow(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) ([]domain.BlockedDate, error) {
	query := `
		SELECT id, sitter_id, blocked_date, created_at
		FROM blocked_dates
		WHERE sitter_id = $1 AND blocked_date BETWEEN $2 AND $3
		ORDER BY blocked_date
	`
	rows, err := r.pool.Query(ctx, query, sitterID, window.Start.Time(), window.End.Time())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blocked := make([]domain.BlockedDate, 0)
	for rows.Next() {
		var (
			b    domain.BlockedDate
			date time.Time
		)
		if err := rows.Scan(&b.ID, &b.SitterID, &date, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Date = domain.DateOf(date, time.UTC)
		blocked = append(blocked, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return blocked, nil
}

var _ domain.BlockedDateRepository = (*PostgresBlockedDateRepository)(nil)
