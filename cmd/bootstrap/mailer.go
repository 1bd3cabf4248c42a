package bootstrap

import (
	"parking-allocator/internal/infra/mail"
	"parking-allocator/internal/pkg/config"
	"parking-allocator/internal/usecase"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			NewMailer,
			fx.As(new(usecase.EmailSender)),
		),
	),
)

func NewMailer(cfg config.Config) (*mail.SMTPSender, error) {
	return mail.NewSMTPSender(cfg.SMTP)
}
