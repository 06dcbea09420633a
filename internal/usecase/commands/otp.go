package commands

import (
	"context"
	"errors"
	"log/slog"

	"boxarena/internal/domain/user"
	"boxarena/internal/infra/notification"
	"boxarena/internal/infra/otp"
	"boxarena/internal/pkg/errs"
	pkgotp "boxarena/internal/pkg/otp"
)

type OTPCommands interface {
	RequestEmailOTP(ctx context.Context, email string) error
	VerifyEmailOTP(ctx context.Context, email, code string) error
	RequestPhoneOTP(ctx context.Context, phone string) error
	VerifyPhoneOTP(ctx context.Context, phone, code string) error
}

type otpCommandsImpl struct {
	store  OTPStore
	mailer EmailSender
	smser  SMSSender
}

func NewOTPCommands(store OTPStore, mailer EmailSender, smser SMSSender) OTPCommands {
	return &otpCommandsImpl{store: store, mailer: mailer, smser: smser}
}

// RequestEmailOTP issues a fresh code for the address, replacing any code
// still outstanding, and mails it.
func (c *otpCommandsImpl) RequestEmailOTP(ctx context.Context, email string) error {
	addr, err := user.NewEmail(email)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	code, err := pkgotp.GenerateCode()
	if err != nil {
		return errs.Wrap(err, "otp generation failed")
	}
	if err := c.store.Save(ctx, otp.ChannelEmail, addr.String(), code); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	subject := notification.OTPSubject("email verification")
	body := notification.OTPBody(code, "email verification")
	if err := c.mailer.Send(addr.String(), subject, body); err != nil {
		return errs.Wrap(err, "otp mail delivery failed")
	}

	slog.Info("otp issued", "channel", "email")
	return nil
}

// VerifyEmailOTP consumes one verification attempt. On a match the address is
// flagged verified so registration can complete.
func (c *otpCommandsImpl) VerifyEmailOTP(ctx context.Context, email, code string) error {
	addr, err := user.NewEmail(email)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.store.Verify(ctx, otp.ChannelEmail, addr.String(), code); err != nil {
		switch {
		case errors.Is(err, errs.ErrOTPNotFound),
			errors.Is(err, errs.ErrOTPMismatch),
			errors.Is(err, errs.ErrOTPTooManyAttempts):
			return err
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if err := c.store.MarkVerified(ctx, otp.ChannelEmail, addr.String()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// RequestPhoneOTP issues a fresh code for the number and delivers it over the
// configured SMS channel.
func (c *otpCommandsImpl) RequestPhoneOTP(ctx context.Context, phone string) error {
	num, err := user.NewPhone(phone)
	if err != nil || num.IsEmpty() {
		return errs.Mark(user.ErrInvalidPhone, errs.ErrDomainValidation)
	}

	code, err := pkgotp.GenerateCode()
	if err != nil {
		return errs.Wrap(err, "otp generation failed")
	}
	if err := c.store.Save(ctx, otp.ChannelPhone, num.String(), code); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := c.smser.Send(ctx, num.String(), notification.OTPSMSBody(code)); err != nil {
		return errs.Wrap(err, "otp sms delivery failed")
	}

	slog.Info("otp issued", "channel", "phone")
	return nil
}

func (c *otpCommandsImpl) VerifyPhoneOTP(ctx context.Context, phone, code string) error {
	num, err := user.NewPhone(phone)
	if err != nil || num.IsEmpty() {
		return errs.Mark(user.ErrInvalidPhone, errs.ErrDomainValidation)
	}

	if err := c.store.Verify(ctx, otp.ChannelPhone, num.String(), code); err != nil {
		switch {
		case errors.Is(err, errs.ErrOTPNotFound),
			errors.Is(err, errs.ErrOTPMismatch),
			errors.Is(err, errs.ErrOTPTooManyAttempts):
			return err
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if err := c.store.MarkVerified(ctx, otp.ChannelPhone, num.String()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
