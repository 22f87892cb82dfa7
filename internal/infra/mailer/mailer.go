package mailer

import (
	"context"
	"log/slog"

	"rental-booking/internal/pkg/config"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// New returns the SendGrid mailer, or a mailer that only logs when no API key is configured.
func New(cfg config.MailConfig, logger *slog.Logger) commands.Mailer {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SENDGRID_API_KEY not set, emails will only be logged")
		return NewLogMailer(logger)
	}
	return NewSendGridMailer(cfg, sendgrid.NewSendClient(cfg.SendGridAPIKey), logger)
}

type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridMailer struct {
	client  sendClient
	from    *mail.Email
	sandbox bool
	logger  *slog.Logger
}

func NewSendGridMailer(cfg config.MailConfig, client sendClient, logger *slog.Logger) *SendGridMailer {
	return &SendGridMailer{
		client:  client,
		from:    mail.NewEmail(cfg.FromName, cfg.FromEmail),
		sandbox: cfg.SandboxMode,
		logger:  logger,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg commands.MailMessage) error {
	to := mail.NewEmail("", msg.To)
	email := mail.NewSingleEmail(m.from, msg.Subject, to, msg.PlainText, "")
	disabled := false
	email.TrackingSettings = &mail.TrackingSettings{
		ClickTracking: &mail.ClickTrackingSetting{Enable: &disabled},
	}
	if m.sandbox {
		settings := mail.NewMailSettings()
		settings.SetSandboxMode(mail.NewSetting(true))
		email.MailSettings = settings
	}

	resp, err := m.client.SendWithContext(ctx, email)
	if err != nil {
		return errs.Wrap(err, "sendgrid send")
	}
	if resp.StatusCode >= 300 {
		return errs.Newf("sendgrid rejected email: status %d: %s", resp.StatusCode, resp.Body)
	}

	m.logger.Debug("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, msg commands.MailMessage) error {
	m.logger.Info("email not sent, no mail provider configured",
		"to", msg.To,
		"subject", msg.Subject)
	return nil
}
