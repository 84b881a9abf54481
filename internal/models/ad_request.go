package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Message is one entry in the negotiation transcript between the sponsor
// and the influencer.
type Message struct {
	From string    `json:"from"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// AdRequest links one campaign to one influencer. It is created either by
// the sponsor (direct offer to a private campaign) or by the influencer
// (application to a public campaign).
type AdRequest struct {
	BaseModel
	CampaignID   string `gorm:"type:uuid;not null;index"`
	InfluencerID string `gorm:"type:uuid;not null;index"`

	Requirements  string
	PaymentAmount float64 `gorm:"not null"`

	// Negotiation state. NegotiatedPaymentAmount is never copied back into
	// PaymentAmount on acceptance; both are exposed to callers.
	IsNegotiated            bool `gorm:"default:false"`
	NegotiatedPaymentAmount *float64

	Messages datatypes.JSON

	Status    AdRequestStatus `gorm:"type:varchar(20);default:'Pending'"`
	Completed bool            `gorm:"default:false"`

	Campaign   *Campaign   `gorm:"foreignKey:CampaignID"`
	Influencer *Influencer `gorm:"foreignKey:InfluencerID"`
}

// Transcript decodes the message log. A nil/empty column decodes to an
// empty slice.
func (r *AdRequest) Transcript() ([]Message, error) {
	if len(r.Messages) == 0 {
		return []Message{}, nil
	}
	var msgs []Message
	if err := json.Unmarshal(r.Messages, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// AppendMessage adds an entry to the transcript and re-encodes it.
func (r *AdRequest) AppendMessage(from, text string) error {
	msgs, err := r.Transcript()
	if err != nil {
		return err
	}
	msgs = append(msgs, Message{From: from, Text: text, At: time.Now().UTC()})
	encoded, err := json.Marshal(msgs)
	if err != nil {
		return err
	}
	r.Messages = datatypes.JSON(encoded)
	return nil
}
