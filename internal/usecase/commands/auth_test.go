//go:build unit

package commands_test

import (
	"testing"
	"time"

	"boxarena/internal/domain/user"
	"boxarena/internal/infra"
	"boxarena/internal/infra/otp"
	"boxarena/internal/pkg/clock"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/pkg/jwt"
	"boxarena/internal/pkg/password"
	"boxarena/internal/usecase/commands"
	"boxarena/internal/usecase/queries"
	commandsmock "boxarena/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockUsers *commandsmock.MockUserRepository
	mockCreds *commandsmock.MockCredentialReader
	mockOTP   *commandsmock.MockOTPStore
	tokens    *jwt.Service
	clk       *clock.MockClock
	commands  commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.mockCreds = commandsmock.NewMockCredentialReader(s.mockCtrl)
	s.mockOTP = commandsmock.NewMockOTPStore(s.mockCtrl)
	s.tokens = jwt.NewService("test-secret-key", time.Hour)
	s.clk = clock.NewMockClock(testNow)

	s.commands = commands.NewAuthCommands(
		s.mockUsers,
		s.mockCreds,
		s.mockOTP,
		s.tokens,
		s.clk,
	)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthCommandsTestSuite) registerInput() commands.RegisterInput {
	return commands.RegisterInput{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Phone:    "+919876543210",
		Password: "s3cret!pass",
	}
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("success: consumes the verified flag and issues a token", func() {
		s.mockOTP.EXPECT().ConsumeVerified(gomock.Any(), otp.ChannelEmail, "ravi@example.com").
			Return(true, nil)
		s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, u *user.User) error {
				s.Equal("ravi@example.com", u.Email().String())
				s.Equal(user.RoleCustomer, u.Role())
				s.NoError(password.ComparePassword(u.PasswordHash(), "s3cret!pass"))
				return nil
			})

		result, err := s.commands.Register(s.T().Context(), s.registerInput())
		s.Require().NoError(err)
		s.Equal("customer", result.Role)

		claims, err := s.tokens.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(result.UserID, claims.UserID)
	})

	s.Run("error: unverified email is rejected before any write", func() {
		s.mockOTP.EXPECT().ConsumeVerified(gomock.Any(), otp.ChannelEmail, "ravi@example.com").
			Return(false, nil)

		_, err := s.commands.Register(s.T().Context(), s.registerInput())
		s.ErrorIs(err, errs.ErrEmailNotVerified)
	})

	s.Run("error: duplicate email", func() {
		s.mockOTP.EXPECT().ConsumeVerified(gomock.Any(), otp.ChannelEmail, "ravi@example.com").
			Return(true, nil)
		s.mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey))

		_, err := s.commands.Register(s.T().Context(), s.registerInput())
		s.ErrorIs(err, errs.ErrEmailTaken)
	})

	s.Run("error: malformed email never reaches the store", func() {
		in := s.registerInput()
		in.Email = "not-an-email"
		_, err := s.commands.Register(s.T().Context(), in)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	userID := uuid.New()
	hash, err := password.HashPassword("s3cret!pass")
	s.Require().NoError(err)
	activeRecord := func() *queries.CredentialRecord {
		return &queries.CredentialRecord{
			ID:           userID,
			PasswordHash: hash,
			Role:         "customer",
			IsActive:     true,
		}
	}

	s.Run("success: issues a token and records the login time", func() {
		s.mockCreds.EXPECT().FindCredentials(gomock.Any(), "ravi@example.com").
			Return(activeRecord(), nil)
		s.mockUsers.EXPECT().RecordLogin(gomock.Any(), userID, testNow).Return(nil)

		result, err := s.commands.Login(s.T().Context(), "ravi@example.com", "s3cret!pass")
		s.Require().NoError(err)
		s.Equal(userID, result.UserID)
		s.Equal("customer", result.Role)

		claims, err := s.tokens.ValidateToken(result.Token)
		s.Require().NoError(err)
		s.Equal(userID, claims.UserID)
	})

	s.Run("error: wrong password", func() {
		s.mockCreds.EXPECT().FindCredentials(gomock.Any(), "ravi@example.com").
			Return(activeRecord(), nil)

		_, err := s.commands.Login(s.T().Context(), "ravi@example.com", "wrong-pass")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("error: unknown email reads the same as a bad password", func() {
		s.mockCreds.EXPECT().FindCredentials(gomock.Any(), "nobody@example.com").
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, err := s.commands.Login(s.T().Context(), "nobody@example.com", "s3cret!pass")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("error: deactivated account", func() {
		rec := activeRecord()
		rec.IsActive = false
		s.mockCreds.EXPECT().FindCredentials(gomock.Any(), "ravi@example.com").
			Return(rec, nil)

		_, err := s.commands.Login(s.T().Context(), "ravi@example.com", "s3cret!pass")
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("success: failing to record the login time is tolerated", func() {
		s.mockCreds.EXPECT().FindCredentials(gomock.Any(), "ravi@example.com").
			Return(activeRecord(), nil)
		s.mockUsers.EXPECT().RecordLogin(gomock.Any(), userID, testNow).
			Return(errs.New("db offline"))

		_, err := s.commands.Login(s.T().Context(), "ravi@example.com", "s3cret!pass")
		s.NoError(err)
	})
}
