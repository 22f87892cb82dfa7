package bootstrap

import (
	"log/slog"

	"rental-booking/internal/infra/mailer"
	"rental-booking/internal/pkg/config"
	"rental-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) commands.Mailer {
	return mailer.New(cfg.Mail, logger)
}
