package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateManager holds the compiled mail templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

const (
	TemplateReminder      = "pending_reminder"
	TemplateMonthlyReport = "monthly_report"
)

var defaultTemplates = map[string]string{
	TemplateReminder: `<html>
<body>
	<p>Hello {{.Username}},</p>
	<p>You have {{.PendingCount}} pending ad request(s) waiting for your response.
	Please login to your dashboard to review them.</p>
	<p>Best regards,<br>The SponsorHub Team</p>
</body>
</html>`,

	TemplateMonthlyReport: `<html>
<head>
	<style>
		body { font-family: Arial, sans-serif; }
		.header { background: #f8f9fa; padding: 20px; }
		.campaign { margin: 20px 0; padding: 15px; border: 1px solid #ddd; }
		.stats { margin: 10px 0; }
	</style>
</head>
<body>
	<div class="header">
		<h2>Monthly Campaign Report - {{.MonthYear}}</h2>
		<p>Dear {{.Username}},</p>
	</div>
	<div class="content">
		{{range .Campaigns}}
		<div class="campaign">
			<h3>{{.Name}}</h3>
			<div class="stats">
				<p>Total Requests: {{.TotalRequests}}</p>
				<p>Accepted Requests: {{.AcceptedRequests}}</p>
				<p>Budget Used: ${{.BudgetUsed}}</p>
			</div>
		</div>
		{{end}}
	</div>
</body>
</html>`,
}

// NewTemplateManager compiles the built-in templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	for name, body := range defaultTemplates {
		tpl, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}
	return tm, nil
}

// Render executes the named template with the given data.
func (tm *TemplateManager) Render(name string, data any) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
