package mail

import (
	"context"

	"parking-allocator/internal/pkg/config"
	"parking-allocator/internal/pkg/errs"

	gomail "github.com/wneessen/go-mail"
)

// Email is a rendered message ready for delivery.
type Email struct {
	To            string
	Subject       string
	PlainTextBody string
	HTMLBody      string
}

// SMTPSender delivers emails over authenticated SMTP.
type SMTPSender struct {
	client *gomail.Client
	from   string
}

func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create smtp client")
	}
	return &SMTPSender{client: client, from: cfg.From}, nil
}

func (s *SMTPSender) Send(ctx context.Context, email Email) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(email.To); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, email.PlainTextBody)
	msg.AddAlternativeString(gomail.TypeTextHTML, email.HTMLBody)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send email")
	}
	return nil
}
