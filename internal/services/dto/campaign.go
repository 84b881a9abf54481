package dto

// CreateCampaignRequest is the sponsor-side campaign creation payload.
// Dates travel as plain ISO strings, mirroring the frontend date inputs.
type CreateCampaignRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
	Visibility  string  `json:"visibility" validate:"required,is-visibility"`
	Goals       string  `json:"goals"`
	Category    string  `json:"category"`
}

// UpdateCampaignRequest carries partial updates; empty fields keep their
// stored values.
type UpdateCampaignRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Budget      *float64 `json:"budget" validate:"omitempty,gt=0"`
	Visibility  string   `json:"visibility" validate:"omitempty,is-visibility"`
	Goals       string   `json:"goals"`
	Category    string   `json:"category"`
}

type CampaignResponse struct {
	ID          string  `json:"id"`
	SponsorID   string  `json:"sponsor_id"`
	SponsorName string  `json:"sponsor_name,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Visibility  string  `json:"visibility"`
	Goals       string  `json:"goals"`
	Category    string  `json:"category"`
	Flagged     string  `json:"flagged"`
}

// DashboardFilter narrows the influencer's public campaign feed. Bound
// from query parameters.
type DashboardFilter struct {
	Category  string   `form:"category"`
	MinBudget *float64 `form:"min_budget"`
	MaxBudget *float64 `form:"max_budget"`
}

// DashboardCampaign is a public campaign annotated with the requesting
// influencer's application state ("Not Applied" when none exists).
type DashboardCampaign struct {
	CampaignResponse
	ApplicationStatus string `json:"application_status"`
}
