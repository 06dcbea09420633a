package readstore

import (
	"context"
	"errors"
	"time"

	"boxarena/internal/infra"
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingColumns = `
	b.id, b.reference, b.facility_id, f.name, f.type, b.user_id,
	b.date, b.start_time, b.end_time, b.duration_min, b.people,
	b.total_amount, b.status, b.payment_status,
	COALESCE(b.order_id, ''), COALESCE(b.payment_id, ''),
	COALESCE(b.notes, ''), COALESCE(b.cancel_reason, ''),
	b.cancelled_at, b.created_at, b.updated_at
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings b
		JOIN facilities f ON f.id = b.facility_id
		WHERE b.id = $1
	`, id)

	view, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID, filter queries.BookingListFilter) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN facilities f ON f.id = b.facility_id
		WHERE b.user_id = $1
	`
	switch filter {
	case queries.BookingFilterUpcoming:
		query += ` AND b.date >= CURRENT_DATE AND b.status = 'confirmed'`
	case queries.BookingFilterPast:
		query += ` AND b.date < CURRENT_DATE`
	case queries.BookingFilterCancelled:
		query += ` AND b.status = 'cancelled'`
	}
	query += ` ORDER BY b.date DESC, b.start_time DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

// FindBlockingStarts returns the start times ("HH:MM") of bookings that hold
// inventory on the facility/date. Pending and cancelled bookings never block
// availability; the status filter matches the insert-time conflict check.
func (s *BookingReadStore) FindBlockingStarts(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT start_time
		FROM bookings
		WHERE facility_id = $1
			AND date = $2
			AND status IN ('confirmed', 'completed')
		ORDER BY start_time
	`, facilityID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query blocking bookings", err)
	}
	defer rows.Close()

	var starts []string
	for rows.Next() {
		var start string
		if err := rows.Scan(&start); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking booking", err)
		}
		starts = append(starts, start)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocking bookings", err)
	}
	return starts, nil
}

func scanBooking(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID,
		&v.Reference,
		&v.FacilityID,
		&v.FacilityName,
		&v.FacilityType,
		&v.UserID,
		&v.Date,
		&v.StartTime,
		&v.EndTime,
		&v.Duration,
		&v.People,
		&v.TotalAmount,
		&v.Status,
		&v.PaymentStatus,
		&v.OrderID,
		&v.PaymentID,
		&v.Notes,
		&v.CancelReason,
		&v.CancelledAt,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
