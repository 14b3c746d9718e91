package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/assetdesk/assetdesk/internal/shared/config"
)

type SMTPEmailService struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) Send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
