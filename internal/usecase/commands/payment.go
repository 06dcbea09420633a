package commands

import (
	"context"
	"log/slog"

	"boxarena/internal/infra"
	"boxarena/internal/infra/notification"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
)

type VerifyPaymentInput struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	OrderID   string
	PaymentID string
	Signature string
}

type PaymentCommands interface {
	VerifyPayment(ctx context.Context, in VerifyPaymentInput) error
}

type paymentCommandsImpl struct {
	repo     BookingRepository
	bookings queries.BookingReadStore
	users    queries.UserReadStore
	gateway  PaymentGateway
	mailer   EmailSender
}

func NewPaymentCommands(
	repo BookingRepository,
	bookings queries.BookingReadStore,
	users queries.UserReadStore,
	gateway PaymentGateway,
	mailer EmailSender,
) PaymentCommands {
	return &paymentCommandsImpl{
		repo:     repo,
		bookings: bookings,
		users:    users,
		gateway:  gateway,
		mailer:   mailer,
	}
}

// VerifyPayment checks the capture proof against the stored order and, on
// success, moves the booking to confirmed/paid. A bad signature leaves the
// booking pending so the client can retry the checkout.
func (c *paymentCommandsImpl) VerifyPayment(ctx context.Context, in VerifyPaymentInput) error {
	b, err := c.repo.FindOwned(ctx, in.BookingID, in.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if b.OrderID() == "" || b.OrderID() != in.OrderID {
		return errs.ErrPaymentVerificationFailed
	}
	if !c.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		return errs.ErrPaymentVerificationFailed
	}

	if err := b.ConfirmPayment(in.PaymentID, in.Signature); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := c.repo.ConfirmPayment(ctx, b); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		if infra.IsKind(err, infra.KindConflict) {
			return errs.ErrBookingConflict
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	c.sendConfirmation(ctx, in.BookingID, in.UserID)
	return nil
}

// sendConfirmation is best effort; the payment is already confirmed and a
// mail outage must not undo that.
func (c *paymentCommandsImpl) sendConfirmation(ctx context.Context, bookingID, userID uuid.UUID) {
	view, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		slog.Warn("confirmation mail skipped, booking lookup failed", "error", err.Error())
		return
	}
	usr, err := c.users.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("confirmation mail skipped, user lookup failed", "error", err.Error())
		return
	}

	body := notification.BookingConfirmedBody(
		view.Reference, view.FacilityName,
		view.Date.Format("2006-01-02"), view.StartTime, view.EndTime,
		view.TotalAmount,
	)
	if err := c.mailer.Send(usr.Email, "Booking confirmed: "+view.Reference, body); err != nil {
		slog.Warn("confirmation mail failed", "error", err.Error())
	}
}
