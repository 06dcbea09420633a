package components

import (
	"boxarena/internal/infra/notification"
	"boxarena/internal/infra/otp"
	"boxarena/internal/infra/readstore"
	repo_impl "boxarena/internal/infra/repository"
	"boxarena/internal/pkg/config"
	"boxarena/internal/usecase/commands"
	"boxarena/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.PendingPurger)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			readstore.NewFacilityReadStore,
			fx.As(new(queries.FacilityReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.CredentialReader)),
		),
		fx.Annotate(
			NewOTPStore,
			fx.As(new(commands.OTPStore)),
		),
		fx.Annotate(
			NewEmailSender,
			fx.As(new(commands.EmailSender)),
		),
		fx.Annotate(
			NewSMSSender,
			fx.As(new(commands.SMSSender)),
		),
	),
)

func NewOTPStore(client *redis.Client, cfg config.Config) *otp.RedisStore {
	return otp.NewRedisStore(client, cfg.OTP.TTL, cfg.OTP.MaxAttempts)
}

func NewEmailSender(cfg config.Config) *notification.SMTPSender {
	return notification.NewSMTPSender(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.From)
}

func NewSMSSender(cfg config.Config) notification.SMSSender {
	if cfg.SMS.WebhookURL == "" {
		return notification.NewNoopSMSSender()
	}
	return notification.NewWebhookSMSSender(cfg.SMS.WebhookURL, cfg.SMS.WebhookToken)
}
