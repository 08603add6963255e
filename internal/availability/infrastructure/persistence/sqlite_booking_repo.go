package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
)

// SQLiteBookingRepository implements domain.BookingRepository with SQLite.
type SQLiteBookingRepository struct {
	db *sql.DB
}

// NewSQLiteBookingRepository creates a new repository.
func NewSQLiteBookingRepository(db *sql.DB) *SQLiteBookingRepository {
	return &SQLiteBookingRepository{db: db}
}

// ListIntersecting returns the sitter's bookings in one of statuses whose
// range intersects window.
func (r *SQLiteBookingRepository) ListIntersecting(
	ctx context.Context,
	sitterID uuid.UUID,
	window domain.DateRange,
	statuses []domain.BookingStatus,
) ([]domain.Booking, error) {
	if len(statuses) == 0 {
		return []domain.Booking{}, nil
	}

	args := []any{sitterID.String(), window.Start.String(), window.End.String()}
	placeholders := make([]string, len(statuses))
	for i, s := range statuses {
		placeholders[i] = "?"
		args = append(args, string(s))
	}

	query := fmt.Sprintf(`
		SELECT id, sitter_id, owner_id, start_date, end_date, status, created_at
		FROM bookings
		WHERE sitter_id = ?
		  AND end_date >= ?
		  AND start_date <= ?
		  AND status IN (%s)
		ORDER BY start_date, id
	`, strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var idStr, sitterStr, ownerStr, startStr, endStr, status, createdAt string
		if err := rows.Scan(&idStr, &sitterStr, &ownerStr, &startStr, &endStr, &status, &createdAt); err != nil {
			return nil, err
		}

		b := domain.Booking{Status: domain.BookingStatus(status)}
		if b.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("booking id %q: %w", idStr, err)
		}
		if b.SitterID, err = uuid.Parse(sitterStr); err != nil {
			return nil, fmt.Errorf("booking sitter id %q: %w", sitterStr, err)
		}
		if b.OwnerID, err = uuid.Parse(ownerStr); err != nil {
			return nil, fmt.Errorf("booking owner id %q: %w", ownerStr, err)
		}
		start, err := domain.ParseDate(startStr)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseDate(endStr)
		if err != nil {
			return nil, err
		}
		b.Range = domain.DateRange{Start: start, End: end}
		if b.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("booking created_at %q: %w", createdAt, err)
		}

		bookings = append(bookings, b)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return bookings, nil
}

var _ domain.BookingRepository = (*SQLiteBookingRepository)(nil)
