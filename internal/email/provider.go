package email

// Provider sends outgoing mail. Implementations must be safe for use from
// background workers.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendTemplate renders the named template and delivers the result.
	SendTemplate(to []string, subject, templateName string, data any) error

	// Validate checks the provider configuration.
	Validate() error
}
