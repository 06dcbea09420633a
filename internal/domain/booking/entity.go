package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPastDate            = errors.New("cannot book slots for past dates")
	ErrCapacityExceeded    = errors.New("number of people exceeds facility capacity")
	ErrNotPending          = errors.New("booking is not pending payment")
	ErrNotCancellable      = errors.New("only confirmed bookings can be cancelled")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrInvalidDuration     = errors.New("duration must be a whole number of hours")
	ErrFacilityUnavailable = errors.New("facility not found or inactive")
)

type Booking struct {
	id            uuid.UUID
	userID        uuid.UUID
	facilityID    uuid.UUID
	date          time.Time
	timeRange     TimeRange
	people        int
	amount        Money
	status        Status
	paymentStatus PaymentStatus
	orderID       string
	paymentID     string
	signature     string
	reference     Reference
	notes         string
	cancelReason  string
	cancelledAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func ReconstructBooking(
	id, userID, facilityID uuid.UUID,
	date time.Time,
	timeRange TimeRange,
	people int,
	amount Money,
	status Status,
	paymentStatus PaymentStatus,
	orderID, paymentID, signature string,
	reference Reference,
	notes, cancelReason string,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		userID:        userID,
		facilityID:    facilityID,
		date:          date,
		timeRange:     timeRange,
		people:        people,
		amount:        amount,
		status:        status,
		paymentStatus: paymentStatus,
		orderID:       orderID,
		paymentID:     paymentID,
		signature:     signature,
		reference:     reference,
		notes:         notes,
		cancelReason:  cancelReason,
		cancelledAt:   cancelledAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) FacilityID() uuid.UUID        { return b.facilityID }
func (b *Booking) Date() time.Time              { return b.date }
func (b *Booking) TimeRange() TimeRange         { return b.timeRange }
func (b *Booking) People() int                  { return b.people }
func (b *Booking) Amount() Money                { return b.amount }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) OrderID() string              { return b.orderID }
func (b *Booking) PaymentID() string            { return b.paymentID }
func (b *Booking) Signature() string            { return b.signature }
func (b *Booking) Reference() Reference         { return b.reference }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) CancelReason() string         { return b.cancelReason }
func (b *Booking) CancelledAt() *time.Time      { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// AttachPaymentOrder records the gateway order created for this booking.
func (b *Booking) AttachPaymentOrder(orderID string) {
	b.orderID = orderID
}

// ConfirmPayment transitions a pending booking to confirmed/paid after the
// gateway signature has been verified.
func (b *Booking) ConfirmPayment(paymentID, signature string) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	b.paymentStatus = PaymentPaid
	b.paymentID = paymentID
	b.signature = signature
	return nil
}

// Cancel transitions a confirmed booking to cancelled. A paid booking is
// marked refunded; the actual refund call is the payment layer's job.
func (b *Booking) Cancel(reason string, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.status != StatusConfirmed {
		return ErrNotCancellable
	}
	b.status = StatusCancelled
	b.cancelReason = reason
	b.cancelledAt = &now
	if b.paymentStatus == PaymentPaid {
		b.paymentStatus = PaymentRefunded
	}
	return nil
}

// IsStalePending reports whether an unpaid pending booking has outlived the
// retention window and is eligible for the cleanup purge.
func (b *Booking) IsStalePending(now time.Time, retention time.Duration) bool {
	return b.status == StatusPending &&
		b.paymentStatus == PaymentPending &&
		now.Sub(b.createdAt) > retention
}

// DateOnly truncates t to midnight, preserving the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPastDate compares calendar days only; time of day is ignored.
func IsPastDate(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
