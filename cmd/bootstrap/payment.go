package bootstrap

import (
	"log/slog"

	"rental-booking/internal/infra/payment"
	"rental-booking/internal/pkg/config"
	"rental-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		NewPaymentSettings,
	),
)

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *payment.StripeGateway {
	return payment.NewStripeGateway(cfg.Stripe, logger)
}

func NewPaymentSettings(cfg config.Config) commands.PaymentSettings {
	return commands.PaymentSettings{
		Currency:    cfg.Stripe.Currency,
		FrontendURL: cfg.App.FrontendURL,
		PendingTTL:  cfg.Jobs.PendingTTL,
	}
}
