package app

import "sponsorhub_backend/internal/email"

// MockEmailProvider is used when SMTP is not configured, for tests and
// local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }
func (m *MockEmailProvider) SendTemplate(to []string, subject, templateName string, data any) error {
	return nil
}
func (m *MockEmailProvider) Validate() error { return nil }
