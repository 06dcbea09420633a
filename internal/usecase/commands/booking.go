package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"boxarena/internal/domain/booking"
	"boxarena/internal/domain/facility"
	"boxarena/internal/infra"
	"boxarena/internal/pkg/clock"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	FacilityID    uuid.UUID
	UserID        uuid.UUID
	Date          time.Time
	StartTime     string
	DurationHours int
	People        int
	Notes         string
}

// CreateBookingResult carries everything the client needs to open the
// payment checkout for the pending booking.
type CreateBookingResult struct {
	BookingID   uuid.UUID
	Reference   string
	OrderID     string
	AmountPaise int64
	Currency    string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID, reason string) error
}

type bookingCommandsImpl struct {
	factory    *booking.Factory
	repo       BookingRepository
	facilities queries.FacilityReadStore
	gateway    PaymentGateway
	clock      clock.Clock
}

func NewBookingCommands(
	factory *booking.Factory,
	repo BookingRepository,
	facilities queries.FacilityReadStore,
	gateway PaymentGateway,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		factory:    factory,
		repo:       repo,
		facilities: facilities,
		gateway:    gateway,
		clock:      clock,
	}
}

// CreateBooking prices and persists a pending booking, then opens a payment
// order for it. The slot is not held until the payment is verified; only
// confirmed bookings block availability.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	fac, err := c.facilities.FindEntityByID(ctx, in.FacilityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrFacilityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	start, err := facility.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	b, err := c.factory.CreateBooking(fac, in.UserID, in.Date, start, in.DurationHours, in.People, in.Notes)
	if err != nil {
		return nil, translateFactoryErr(err)
	}

	orderID, err := c.gateway.CreateOrder(b.Amount().Paise(), b.Reference().String(), map[string]any{
		"booking_id": b.ID().String(),
		"facility":   fac.Name(),
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentOrderFailed)
	}
	b.AttachPaymentOrder(orderID)

	if err := c.repo.Create(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.ErrBookingConflict
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.ErrFacilityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		BookingID:   b.ID(),
		Reference:   b.Reference().String(),
		OrderID:     orderID,
		AmountPaise: b.Amount().Paise(),
		Currency:    c.gateway.Currency(),
	}, nil
}

// CancelBooking cancels a confirmed booking owned by userID. Paid bookings
// are refunded through the gateway before the cancellation is persisted.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID, reason string) error {
	b, err := c.repo.FindOwned(ctx, bookingID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	wasPaid := b.PaymentStatus() == booking.PaymentPaid
	paymentID := b.PaymentID()

	if err := b.Cancel(reason, c.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrNotCancellable)
	}

	if wasPaid && paymentID != "" {
		if err := c.gateway.Refund(paymentID, b.Amount().Paise()); err != nil {
			return errs.Mark(err, errs.ErrPaymentOrderFailed)
		}
	}

	if err := c.repo.Cancel(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("booking cancelled",
		"booking_id", bookingID.String(),
		"refunded", wasPaid,
	)
	return nil
}

func translateFactoryErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrPastDate):
		return errs.ErrPastDate
	case errors.Is(err, booking.ErrCapacityExceeded):
		return errs.ErrCapacityExceeded
	case errors.Is(err, booking.ErrInvalidDuration):
		return errs.Mark(err, errs.ErrInvalidTimeSlot)
	case errors.Is(err, booking.ErrFacilityUnavailable):
		return errs.ErrFacilityInactive
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
