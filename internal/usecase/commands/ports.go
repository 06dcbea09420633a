package commands

import (
	"context"
	"time"

	"boxarena/internal/domain/booking"
	"boxarena/internal/domain/user"
	"boxarena/internal/infra/otp"
	"boxarena/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingRepository is the write side of booking persistence. Create must be
// atomic with respect to concurrent overlapping inserts.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	ConfirmPayment(ctx context.Context, b *booking.Booking) error
	Cancel(ctx context.Context, b *booking.Booking) error
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*booking.Booking, error)
	PurgeStalePending(ctx context.Context, cutoff time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// PaymentGateway abstracts the order/capture/refund cycle. Amounts are in the
// smallest currency unit.
type PaymentGateway interface {
	CreateOrder(amountPaise int64, receipt string, notes map[string]any) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
	Refund(paymentID string, amountPaise int64) error
	Currency() string
}

type OTPStore interface {
	Save(ctx context.Context, channel otp.Channel, contact, code string) error
	Verify(ctx context.Context, channel otp.Channel, contact, code string) error
	MarkVerified(ctx context.Context, channel otp.Channel, contact string) error
	ConsumeVerified(ctx context.Context, channel otp.Channel, contact string) (bool, error)
}

type EmailSender interface {
	Send(to string, subject string, body string) error
}

type SMSSender interface {
	Send(ctx context.Context, to string, body string) error
}

type CredentialReader interface {
	FindCredentials(ctx context.Context, email string) (*queries.CredentialRecord, error)
}
