package commands

import (
	"context"
	"log/slog"

	"boxarena/internal/domain/user"
	"boxarena/internal/infra"
	"boxarena/internal/infra/otp"
	"boxarena/internal/pkg/clock"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/pkg/jwt"
	"boxarena/internal/pkg/password"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type AuthResult struct {
	Token  string
	UserID uuid.UUID
	Role   string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, pass string) (*AuthResult, error)
}

type authCommandsImpl struct {
	users       UserRepository
	credentials CredentialReader
	otpStore    OTPStore
	tokens      *jwt.Service
	clock       clock.Clock
}

func NewAuthCommands(
	users UserRepository,
	credentials CredentialReader,
	otpStore OTPStore,
	tokens *jwt.Service,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		users:       users,
		credentials: credentials,
		otpStore:    otpStore,
		tokens:      tokens,
		clock:       clock,
	}
}

// Register creates a customer account. The email must have passed OTP
// verification first; the verified flag is consumed so it cannot be reused
// for a second registration.
func (c *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	verified, err := c.otpStore.ConsumeVerified(ctx, otp.ChannelEmail, email.String())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !verified {
		return nil, errs.ErrEmailNotVerified
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	u, err := user.NewUser(in.Name, email, phone, hash, user.RoleCustomer)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.users.Create(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	token, err := c.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "token generation failed")
	}

	slog.Info("user registered", "user_id", u.ID().String())
	return &AuthResult{Token: token, UserID: u.ID(), Role: u.Role().String()}, nil
}

// Login checks credentials and issues a token. Every failure path reads as
// invalid credentials so the response does not leak which part was wrong.
func (c *authCommandsImpl) Login(ctx context.Context, email, pass string) (*AuthResult, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	creds, err := c.credentials.FindCredentials(ctx, addr.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !creds.IsActive {
		return nil, errs.ErrInvalidCredentials
	}
	if err := password.ComparePassword(creds.PasswordHash, pass); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	token, err := c.tokens.GenerateToken(creds.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "token generation failed")
	}

	if err := c.users.RecordLogin(ctx, creds.ID, c.clock.Now()); err != nil {
		slog.Warn("failed to record login time", "error", err.Error())
	}

	return &AuthResult{Token: token, UserID: creds.ID, Role: role.String()}, nil
}
