// Package mailer delivers mail through an SMTP relay.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ozodbek/blogapi/internal/config"
	"github.com/ozodbek/blogapi/internal/model"
)

var _ model.Mailer = (*Mailer)(nil)

// Mailer sends mail via gomail over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a Mailer from SMTP configuration.
func New(cfg config.SMTP) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send sends a plain text email to the given recipients.
func (m *Mailer) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
