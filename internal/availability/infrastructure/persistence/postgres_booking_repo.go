package persistence

import (
	"context"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBookingRepository implements domain.BookingRepository with PostgreSQL.
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new repository.
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

// ListIntersecting returns the sitter's bookings in one of statuses whose
// range intersects window.
func (r *PostgresBookingRepository) ListIntersecting(
	ctx context.Context,
	sitterID uuid.UUID,
	window domain.DateRange,
	statuses []domain.BookingStatus,
) ([]domain.Booking, error) {
	if len(statuses) == 0 {
		return []domain.Booking{}, nil
	}

	query := `
		SELECT id, sitter_id, owner_id, start_date, end_date, status, created_at
		FROM bookings
		WHERE sitter_id = $1
		  AND end_date >= $2
		  AND start_date <= $3
		  AND status = ANY($4)
		ORDER BY start_date, id
	`
	rows, err := r.pool.Query(ctx, query, sitterID, window.Start.Time(), window.End.Time(), statusStrings(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			b          domain.Booking
			start, end time.Time
			status     string
		)
		if err := rows.Scan(&b.ID, &b.SitterID, &b.OwnerID, &start, &end, &status, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Range = domain.DateRange{Start: domain.DateOf(start, time.UTC), End: domain.DateOf(end, time.UTC)}
		b.Status = domain.BookingStatus(status)
		bookings = append(bookings, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

var _ domain.BookingRepository = (*PostgresBookingRepository)(nil)
