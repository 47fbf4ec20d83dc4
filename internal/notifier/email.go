package notifier

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/skillwave/skillwave-api/internal/config"
)

// Email delivers notifications over SMTP to a carrier email-to-SMS gateway
// address derived from the phone number.
type Email struct {
	dialer *gomail.Dialer
	from   string
	domain string
}

func NewEmail(cfg config.NotifierConfig) *Email {
	return &Email{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
		domain: cfg.EmailDomain,
	}
}

func (e *Email) Notify(_ context.Context, phone, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", e.from)
	msg.SetHeader("To", fmt.Sprintf("%s@%s", phone, e.domain))
	msg.SetHeader("Subject", "SkillWave notification")
	msg.SetBody("text/plain", message)

	return e.dialer.DialAndSend(msg)
}
