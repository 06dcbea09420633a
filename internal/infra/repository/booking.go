package repository

import (
	"context"
	"errors"
	"time"

	"boxarena/internal/domain/booking"
	"boxarena/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create persists a pending booking. The overlap pre-check and the insert run
// in one transaction; the bookings_no_overlap exclusion constraint is the
// backstop that keeps two concurrent overlapping creates from both landing.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE facility_id = $1
				AND date = $2
				AND status IN ('confirmed', 'completed')
				AND start_time < $4
				AND end_time > $3
		)
	`, b.FacilityID(), b.Date(), b.TimeRange().Start().String(), b.TimeRange().End().String()).Scan(&exists)
	if err != nil {
		return infra.WrapRepoErr("failed to check booking conflict", err)
	}
	if exists {
		return infra.WrapRepoErr("time slot already booked", nil, infra.KindConflict)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings
			(id, reference, user_id, facility_id, date, start_time, end_time,
			 duration_min, people, total_amount, status, payment_status,
			 order_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
	`,
		b.ID(), b.Reference().String(), b.UserID(), b.FacilityID(), b.Date(),
		b.TimeRange().Start().String(), b.TimeRange().End().String(),
		b.TimeRange().DurationMinutes(), b.People(), b.Amount().Rupees(),
		b.Status().String(), b.PaymentStatus().String(),
		nullable(b.OrderID()), nullable(b.Notes()), b.CreatedAt(),
	)
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr("time slot already booked", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit booking", err)
	}
	return nil
}

func (r *BookingRepository) ConfirmPayment(ctx context.Context, b *booking.Booking) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings
		SET status = $2,
			payment_status = $3,
			payment_id = $4,
			signature = $5,
			updated_at = now()
		WHERE id = $1
	`, b.ID(), b.Status().String(), b.PaymentStatus().String(), b.PaymentID(), b.Signature())
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr("time slot already booked", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to confirm booking payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, b *booking.Booking) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings
		SET status = $2,
			payment_status = $3,
			cancel_reason = $4,
			cancelled_at = $5,
			updated_at = now()
		WHERE id = $1
	`, b.ID(), b.Status().String(), b.PaymentStatus().String(), nullable(b.CancelReason()), b.CancelledAt())
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// PurgeStalePending deletes unpaid pending bookings created before the
// cutoff so abandoned payments stop consuming calendar inventory.
func (r *BookingRepository) PurgeStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM bookings
		WHERE status = 'pending'
			AND payment_status = 'pending'
			AND created_at < $1
	`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge stale pending bookings", err)
	}
	return tag.RowsAffected(), nil
}

// FindOwned loads a booking owned by userID for a state transition. The read
// takes no row lock; concurrent transitions are resolved by the status guards
// on the entity and the exclusion constraint on confirm.
func (r *BookingRepository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*booking.Booking, error) {
	var rec bookingRecord
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, facility_id, date, start_time, end_time, people,
			total_amount, status, payment_status,
			COALESCE(order_id, ''), COALESCE(payment_id, ''), reference,
			created_at, updated_at
		FROM bookings
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&rec.ID, &rec.UserID, &rec.FacilityID, &rec.Date,
		&rec.StartTime, &rec.EndTime, &rec.People,
		&rec.TotalAmount, &rec.Status, &rec.PaymentStatus,
		&rec.OrderID, &rec.PaymentID, &rec.Reference,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, translateNotFound(err, "booking not found", "failed to load booking")
	}
	b, err := rec.ToDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rebuild booking entity", err)
	}
	return b, nil
}

type bookingRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	FacilityID    uuid.UUID
	Date          time.Time
	StartTime     string
	EndTime       string
	People        int
	TotalAmount   int64
	Status        string
	PaymentStatus string
	OrderID       string
	PaymentID     string
	Reference     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToDomain rebuilds the domain entity from the stored row.
func (rec *bookingRecord) ToDomain() (*booking.Booking, error) {
	timeRange, err := parseTimeRange(rec.StartTime, rec.EndTime)
	if err != nil {
		return nil, err
	}
	amount, err := booking.NewMoney(rec.TotalAmount)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		rec.ID, rec.UserID, rec.FacilityID,
		rec.Date, timeRange, rec.People, amount,
		booking.Status(rec.Status), booking.PaymentStatus(rec.PaymentStatus),
		rec.OrderID, rec.PaymentID, "",
		booking.Reference(rec.Reference),
		"", "", nil,
		rec.CreatedAt, rec.UpdatedAt,
	), nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
