package email

// Email is a single outgoing message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Config for the SMTP transport.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// ReminderData feeds the pending-requests reminder template.
type ReminderData struct {
	Username     string
	PendingCount int64
}

// CampaignStats is one row of the monthly sponsor report.
type CampaignStats struct {
	Name             string
	TotalRequests    int
	AcceptedRequests int
	BudgetUsed       float64
}

// ReportData feeds the monthly report template.
type ReportData struct {
	Username  string
	MonthYear string
	Campaigns []CampaignStats
}
