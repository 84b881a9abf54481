package services

import (
	"testing"

	"sponsorhub_backend/internal/apperrors"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdRequestFixture() (*fakeStore, AdRequestService) {
	st := newFakeStore()
	svc := NewAdRequestService(
		&fakeProfileRepo{st: st},
		&fakeCampaignRepo{st: st},
		&fakeAdRequestRepo{st: st},
	)
	return st, svc
}

func TestApply_Success(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{
		Name: "Launch", Budget: 5000, Goals: "Promote the new line", Visibility: models.VisibilityPublic,
	})

	resp, err := svc.Apply(influencer.ID, &dto.ApplyRequest{CampaignID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, 5000.0, resp.PaymentAmount)
	assert.Equal(t, "Promote the new line", resp.Requirements)
	assert.False(t, resp.IsNegotiated)
}

func TestApply_RequiresCompleteProfile(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, false)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPublic})

	_, err := svc.Apply(influencer.ID, &dto.ApplyRequest{CampaignID: c.ID})
	assert.ErrorIs(t, err, apperrors.ErrProfileIncomplete)
}

func TestApply_UnknownCampaign(t *testing.T) {
	st, svc := newAdRequestFixture()
	influencer := seedInfluencer(st, true)

	_, err := svc.Apply(influencer.ID, &dto.ApplyRequest{CampaignID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)
}

func TestApply_PrivateCampaignRejected(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Hidden", Budget: 5000, Visibility: models.VisibilityPrivate})

	_, err := svc.Apply(influencer.ID, &dto.ApplyRequest{CampaignID: c.ID})
	assert.ErrorIs(t, err, apperrors.ErrCampaignPrivate)
}

func TestApply_TakenCampaignRejected(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	rival := st.addUser(models.UserRoleInfluencer, models.FlagStatusActive, "rival", "rival@example.com", "hash")
	st.addInfluencer(rival, "Sports", "Running", 5000)

	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPublic})
	st.addAdRequest(c.ID, rival.ID, models.AdRequest{Status: models.AdRequestStatusAccepted, PaymentAmount: 5000})

	_, err := svc.Apply(influencer.ID, &dto.ApplyRequest{CampaignID: c.ID})
	assert.ErrorIs(t, err, apperrors.ErrCampaignTaken)
}

func TestApply_DuplicateRejected(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPublic})
	st.addAdRequest(c.ID, influencer.ID, models.AdRequest{Status: models.AdRequestStatusPending, PaymentAmount: 5000})

	_, err := svc.Apply(influencer.ID, &dto.ApplyRequest{CampaignID: c.ID})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)
}

func TestNegotiate_SetsCounterOfferAndTranscript(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{PaymentAmount: 5000})

	resp, err := svc.Negotiate(influencer.ID, r.ID, &dto.NegotiateRequest{
		PaymentAmount: 7000,
		Message:       "My rate is higher for exclusives",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsNegotiated)
	require.NotNil(t, resp.NegotiatedPaymentAmount)
	assert.Equal(t, 7000.0, *resp.NegotiatedPaymentAmount)
	assert.Equal(t, 5000.0, resp.PaymentAmount)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "Influencer", resp.Messages[0].From)
	assert.Equal(t, "My rate is higher for exclusives", resp.Messages[0].Text)
}

func TestNegotiate_NotOwned(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{PaymentAmount: 5000})

	_, err := svc.Negotiate("intruder", r.ID, &dto.NegotiateRequest{PaymentAmount: 1})
	assert.ErrorIs(t, err, apperrors.ErrAdRequestNotOwned)
}

func TestAcceptNegotiation_WithoutCounterOffer(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{PaymentAmount: 5000})

	_, err := svc.AcceptNegotiation(sponsor.ID, r.ID)
	assert.ErrorIs(t, err, apperrors.ErrNoNegotiation)
}

func TestAcceptNegotiation_PreservesOriginalAmount(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})

	counter := 7000.0
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{
		PaymentAmount: 5000, IsNegotiated: true, NegotiatedPaymentAmount: &counter,
	})

	resp, err := svc.AcceptNegotiation(sponsor.ID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Accepted", resp.Status)
	assert.False(t, resp.IsNegotiated)
	// Acceptance records the agreement; the original offer is never
	// overwritten.
	assert.Equal(t, 5000.0, resp.PaymentAmount)
	require.NotNil(t, resp.NegotiatedPaymentAmount)
	assert.Equal(t, 7000.0, *resp.NegotiatedPaymentAmount)
}

func TestRejectNegotiation_ResetsCounterOffer(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})

	counter := 7000.0
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{
		PaymentAmount: 5000, IsNegotiated: true, NegotiatedPaymentAmount: &counter,
	})

	resp, err := svc.RejectNegotiation(sponsor.ID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status, "rejecting the counter keeps the request open")
	assert.False(t, resp.IsNegotiated)
	require.NotNil(t, resp.NegotiatedPaymentAmount)
	assert.Equal(t, 5000.0, *resp.NegotiatedPaymentAmount)
}

func TestRejectNegotiation_WithoutCounterOffer(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{PaymentAmount: 5000})

	// Rejecting without a pending counter-offer just restates the
	// original amount.
	resp, err := svc.RejectNegotiation(sponsor.ID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.False(t, resp.IsNegotiated)
	require.NotNil(t, resp.NegotiatedPaymentAmount)
	assert.Equal(t, 5000.0, *resp.NegotiatedPaymentAmount)
}

func TestUpdateDirect_SetsStatus(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{PaymentAmount: 5000, Requirements: "Two posts"})

	resp, err := svc.UpdateDirect(sponsor.ID, r.ID, &dto.UpdateAdRequestRequest{Status: "Rejected"})
	require.NoError(t, err)
	assert.Equal(t, "Rejected", resp.Status)
	assert.Equal(t, "Two posts", resp.Requirements)
	assert.Equal(t, 5000.0, resp.PaymentAmount)
}

func TestUpdateStatusByInfluencer_InvalidValue(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{PaymentAmount: 5000})

	_, err := svc.UpdateStatusByInfluencer(influencer.ID, r.ID, &dto.StatusUpdateRequest{Status: "Pending"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAdStatus)
}

func TestUpdateStatusByInfluencer_Accepts(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(sponsor.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})
	r := st.addAdRequest(c.ID, influencer.ID, models.AdRequest{PaymentAmount: 5000})

	resp, err := svc.UpdateStatusByInfluencer(influencer.ID, r.ID, &dto.StatusUpdateRequest{Status: "Accepted"})
	require.NoError(t, err)
	assert.Equal(t, "Accepted", resp.Status)
}

func TestCreateDirect_CampaignOwnershipEnforced(t *testing.T) {
	st, svc := newAdRequestFixture()
	owner := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(owner.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})

	_, err := svc.CreateDirect("intruder", &dto.CreateAdRequestRequest{
		CampaignID: c.ID, InfluencerID: influencer.ID, PaymentAmount: 1000,
	})
	require.ErrorIs(t, err, apperrors.ErrCampaignForbidden)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestCreateDirect_UnknownCampaign(t *testing.T) {
	st, svc := newAdRequestFixture()
	owner := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)

	_, err := svc.CreateDirect(owner.ID, &dto.CreateAdRequestRequest{
		CampaignID: "missing", InfluencerID: influencer.ID, PaymentAmount: 1000,
	})
	assert.ErrorIs(t, err, apperrors.ErrCampaignNotFound)
}

func TestCreateDirect_UnknownInfluencer(t *testing.T) {
	st, svc := newAdRequestFixture()
	owner := seedSponsor(st, true)
	c := st.addCampaign(owner.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})

	_, err := svc.CreateDirect(owner.ID, &dto.CreateAdRequestRequest{
		CampaignID: c.ID, InfluencerID: "ghost", PaymentAmount: 1000,
	})
	assert.ErrorIs(t, err, apperrors.ErrInfluencerNotFound)
}

func TestCreateDirect_Success(t *testing.T) {
	st, svc := newAdRequestFixture()
	owner := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	c := st.addCampaign(owner.ID, models.Campaign{Name: "Launch", Budget: 5000, Visibility: models.VisibilityPrivate})

	resp, err := svc.CreateDirect(owner.ID, &dto.CreateAdRequestRequest{
		CampaignID:    c.ID,
		InfluencerID:  influencer.ID,
		Requirements:  "Three posts, one story",
		PaymentAmount: 1200,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, 1200.0, resp.PaymentAmount)
	assert.Equal(t, "cr7", resp.InfluencerName)
}

func TestIncomingForSponsor_ExcludesTakenCampaigns(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)
	rival := st.addUser(models.UserRoleInfluencer, models.FlagStatusActive, "rival", "rival@example.com", "hash")
	st.addInfluencer(rival, "Sports", "Running", 5000)

	open := st.addCampaign(sponsor.ID, models.Campaign{Name: "Open", Budget: 1000, Visibility: models.VisibilityPublic})
	taken := st.addCampaign(sponsor.ID, models.Campaign{Name: "Taken", Budget: 2000, Visibility: models.VisibilityPublic})

	st.addAdRequest(open.ID, influencer.ID, models.AdRequest{Status: models.AdRequestStatusPending, PaymentAmount: 1000})
	st.addAdRequest(taken.ID, rival.ID, models.AdRequest{Status: models.AdRequestStatusAccepted, PaymentAmount: 2000})
	st.addAdRequest(taken.ID, influencer.ID, models.AdRequest{Status: models.AdRequestStatusPending, PaymentAmount: 2000})

	incoming, err := svc.IncomingForSponsor(sponsor.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, open.ID, incoming[0].CampaignID)
}

func TestListPrivateForInfluencer_OnlyPrivateCampaigns(t *testing.T) {
	st, svc := newAdRequestFixture()
	sponsor := seedSponsor(st, true)
	influencer := seedInfluencer(st, true)

	private := st.addCampaign(sponsor.ID, models.Campaign{Name: "Direct", Budget: 1000, Visibility: models.VisibilityPrivate})
	public := st.addCampaign(sponsor.ID, models.Campaign{Name: "Open", Budget: 2000, Visibility: models.VisibilityPublic})

	st.addAdRequest(private.ID, influencer.ID, models.AdRequest{PaymentAmount: 1000})
	st.addAdRequest(public.ID, influencer.ID, models.AdRequest{PaymentAmount: 2000})

	reqs, err := svc.ListPrivateForInfluencer(influencer.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, private.ID, reqs[0].CampaignID)
}
