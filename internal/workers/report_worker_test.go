package workers

import (
	"fmt"
	"testing"
	"time"

	"sponsorhub_backend/internal/email"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCampaignRepo struct {
	repositories.CampaignRepository
	bySponsor map[string][]models.Campaign
}

func (s *stubCampaignRepo) FindBySponsor(sponsorID string) ([]models.Campaign, error) {
	return s.bySponsor[sponsorID], nil
}

func sponsorRow(id, username, emailAddr string) models.Sponsor {
	return models.Sponsor{
		UserID: id,
		User: &models.User{
			BaseModel: models.BaseModel{ID: id},
			Username:  username,
			Email:     emailAddr,
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestReportRun_AggregatesAcceptedRequests(t *testing.T) {
	profiles := &stubProfileRepo{sponsors: []models.Sponsor{
		sponsorRow("s1", "nike", "nike@example.com"),
	}}
	campaigns := &stubCampaignRepo{bySponsor: map[string][]models.Campaign{
		"s1": {{BaseModel: models.BaseModel{ID: "c1"}, Name: "Launch"}},
	}}
	requests := &stubAdRequestRepo{requestsByCampaign: map[string][]models.AdRequest{
		"c1": {
			{Status: models.AdRequestStatusAccepted, PaymentAmount: 5000},
			{Status: models.AdRequestStatusAccepted, PaymentAmount: 5000, NegotiatedPaymentAmount: floatPtr(7000)},
			{Status: models.AdRequestStatusPending, PaymentAmount: 5000},
		},
	}}
	provider := &recordingProvider{}

	w := NewReportWorker(profiles, campaigns, requests, provider, time.Minute)
	require.NoError(t, w.RunOnce())

	require.Len(t, provider.sent, 1)
	assert.Equal(t, "nike@example.com", provider.sent[0].to)
	assert.Equal(t, email.TemplateMonthlyReport, provider.sent[0].template)
	assert.Contains(t, provider.sent[0].subject, time.Now().Format("January 2006"))

	data, ok := provider.sent[0].data.(email.ReportData)
	require.True(t, ok)
	assert.Equal(t, "nike", data.Username)
	require.Len(t, data.Campaigns, 1)

	// Accepted requests count toward the budget; the counter offer wins
	// over the original amount when one was made.
	row := data.Campaigns[0]
	assert.Equal(t, "Launch", row.Name)
	assert.Equal(t, 3, row.TotalRequests)
	assert.Equal(t, 2, row.AcceptedRequests)
	assert.Equal(t, 12000.0, row.BudgetUsed)
}

func TestReportRun_SkipsSponsorsWithoutCampaigns(t *testing.T) {
	profiles := &stubProfileRepo{sponsors: []models.Sponsor{
		sponsorRow("s1", "quiet", "quiet@example.com"),
	}}
	campaigns := &stubCampaignRepo{bySponsor: map[string][]models.Campaign{}}
	provider := &recordingProvider{}

	w := NewReportWorker(profiles, campaigns, &stubAdRequestRepo{}, provider, time.Minute)
	require.NoError(t, w.RunOnce())
	assert.Empty(t, provider.sent)
}

func TestReportRun_DeliveryFailureAbortsBatch(t *testing.T) {
	profiles := &stubProfileRepo{sponsors: []models.Sponsor{
		sponsorRow("s1", "broken", "broken@example.com"),
		sponsorRow("s2", "nike", "nike@example.com"),
	}}
	bySponsor := map[string][]models.Campaign{}
	for _, id := range []string{"s1", "s2"} {
		bySponsor[id] = []models.Campaign{{BaseModel: models.BaseModel{ID: fmt.Sprintf("c-%s", id)}, Name: "Launch"}}
	}
	campaigns := &stubCampaignRepo{bySponsor: bySponsor}
	provider := &recordingProvider{failFor: "broken@example.com"}

	w := NewReportWorker(profiles, campaigns, &stubAdRequestRepo{}, provider, time.Minute)
	err := w.RunOnce()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken@example.com")
	assert.Empty(t, provider.sent)
}
