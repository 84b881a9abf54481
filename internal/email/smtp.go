package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through a plain SMTP relay.
type SMTPProvider struct {
	config    Config
	templates *TemplateManager
}

func NewSMTPProvider(cfg Config) (*SMTPProvider, error) {
	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}
	return &SMTPProvider{config: cfg, templates: tm}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(p.config.Host, p.config.Port, p.config.Username, p.config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendTemplate(to []string, subject, templateName string, data any) error {
	body, err := p.templates.Render(templateName, data)
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: body,
	})
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if p.config.Port <= 0 {
		return fmt.Errorf("smtp port is required")
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("smtp from address is required")
	}
	return nil
}
