package notify

import (
	"context"
	"fmt"

	"github.com/DevAyush27/med-tracker/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPEmailSender sends reminder emails over SMTP.
type SMTPEmailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPEmailSender creates an email sender from the SMTP configuration.
func NewSMTPEmailSender(cfg config.SMTPConfig) *SMTPEmailSender {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPEmailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// SendEmail sends a single plain-text message.
func (s *SMTPEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
