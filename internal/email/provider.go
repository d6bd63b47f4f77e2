package email

import (
	"fmt"
	"strings"

	"studio_backend/internal/logger"
)

// Provider sends outbound mail. The SMTP implementation is selected when a
// credential is configured; otherwise LogProvider records what would have
// been sent and the site keeps working without email.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendTemplate renders a named template and delivers the result.
	SendTemplate(to []string, subject, templateName string, data interface{}) error
}

// LogProvider is the no-credential fallback. Every send succeeds and is
// written to the log instead of the wire.
type LogProvider struct {
	templates *TemplateManager
}

func NewLogProvider() *LogProvider {
	tm, err := NewTemplateManager()
	if err != nil {
		// Builtin templates are compiled in; failure to parse them is a bug.
		panic(fmt.Sprintf("builtin email templates failed to parse: %v", err))
	}
	return &LogProvider{templates: tm}
}

func (p *LogProvider) Send(email *Email) error {
	body := email.Body
	if body == "" {
		body = email.HTMLBody
	}
	logger.Warn("email credential not configured, logging message instead",
		"to", strings.Join(email.To, ", "),
		"subject", email.Subject,
		"body", body,
	)
	return nil
}

func (p *LogProvider) SendTemplate(to []string, subject, templateName string, data interface{}) error {
	htmlBody, err := p.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template %s: %w", templateName, err)
	}

	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}
