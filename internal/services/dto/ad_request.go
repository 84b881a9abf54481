package dto

import "time"

// CreateAdRequestRequest is the sponsor-side direct offer to an
// influencer on one of the sponsor's own campaigns.
type CreateAdRequestRequest struct {
	CampaignID    string  `json:"campaign_id" validate:"required,uuid"`
	InfluencerID  string  `json:"influencer_id" validate:"required,uuid"`
	Requirements  string  `json:"requirements" validate:"required"`
	PaymentAmount float64 `json:"payment_amount" validate:"required,gt=0"`
}

type UpdateAdRequestRequest struct {
	Requirements  string   `json:"requirements"`
	PaymentAmount *float64 `json:"payment_amount" validate:"omitempty,gt=0"`
	Status        string   `json:"status" validate:"omitempty,is-ad-status"`
}

// NegotiateRequest is the influencer's counter-offer on a pending
// request. Both the amount and an accompanying message are mandatory.
type NegotiateRequest struct {
	PaymentAmount float64 `json:"payment_amount" validate:"required,gt=0"`
	Message       string  `json:"message" validate:"required"`
}

// StatusUpdateRequest accepts or rejects a request outright.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,is-ad-status"`
}

// ApplyRequest is the influencer's application to a public campaign.
type ApplyRequest struct {
	CampaignID string `json:"campaign_id" validate:"required,uuid"`
}

type TranscriptMessage struct {
	From string    `json:"from"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type AdRequestResponse struct {
	ID             string `json:"id"`
	CampaignID     string `json:"campaign_id"`
	CampaignName   string `json:"campaign_name,omitempty"`
	InfluencerID   string `json:"influencer_id"`
	InfluencerName string `json:"influencer_name,omitempty"`
	SponsorName    string `json:"sponsor_name,omitempty"`

	Requirements  string  `json:"requirements"`
	PaymentAmount float64 `json:"payment_amount"`

	IsNegotiated            bool     `json:"is_negotiated"`
	NegotiatedPaymentAmount *float64 `json:"negotiated_payment_amount"`

	Messages []TranscriptMessage `json:"messages"`

	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}
