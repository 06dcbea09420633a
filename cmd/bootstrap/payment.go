package bootstrap

import (
	"boxarena/internal/infra/payment"
	"boxarena/internal/pkg/config"
	"boxarena/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *payment.RazorpayGateway {
	return payment.NewRazorpayGateway(cfg.Payment.KeyID, cfg.Payment.KeySecret, cfg.Payment.Currency)
}
