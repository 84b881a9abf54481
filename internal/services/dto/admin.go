package dto

// DashboardStats is the admin landing view, cached under a short TTL.
type DashboardStats struct {
	TotalSponsors      int64 `json:"total_sponsors"`
	FlaggedSponsors    int64 `json:"flagged_sponsors"`
	TotalInfluencers   int64 `json:"total_influencers"`
	FlaggedInfluencers int64 `json:"flagged_influencers"`

	TotalCampaigns   int64 `json:"total_campaigns"`
	PublicCampaigns  int64 `json:"public_campaigns"`
	PrivateCampaigns int64 `json:"private_campaigns"`
	FlaggedCampaigns int64 `json:"flagged_campaigns"`

	TotalAdRequests    int64 `json:"total_ad_requests"`
	PendingAdRequests  int64 `json:"pending_ad_requests"`
	AcceptedAdRequests int64 `json:"accepted_ad_requests"`
	RejectedAdRequests int64 `json:"rejected_ad_requests"`
}

// UserSummary is one row of the admin user listings.
type UserSummary struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Flagged  string `json:"flagged"`

	// Role profile fields; only one side is populated.
	Industry    string `json:"industry,omitempty"`
	SponsorType string `json:"sponsor_type,omitempty"`
	Category    string `json:"category,omitempty"`
	Expertise   string `json:"expertise,omitempty"`
	Reach       int64  `json:"reach,omitempty"`
}

// RecentAdRequest is one row of the admin activity feed.
type RecentAdRequest struct {
	ID             string  `json:"id"`
	CampaignName   string  `json:"campaign_name"`
	SponsorName    string  `json:"sponsor_name"`
	InfluencerName string  `json:"influencer_name"`
	PaymentAmount  float64 `json:"payment_amount"`
	Status         string  `json:"status"`
}

// AdminDashboardResponse bundles the stats and the activity feed.
type AdminDashboardResponse struct {
	Stats            DashboardStats    `json:"stats"`
	RecentAdRequests []RecentAdRequest `json:"recent_ad_requests"`
}
