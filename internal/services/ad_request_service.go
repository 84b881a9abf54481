package services

import (
	"sponsorhub_backend/internal/apperrors"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"
	"sponsorhub_backend/internal/services/dto"
)

type AdRequestService interface {
	// Sponsor side.
	ListForSponsor(userID string) ([]dto.AdRequestResponse, error)
	CreateDirect(userID string, req *dto.CreateAdRequestRequest) (*dto.AdRequestResponse, error)
	UpdateDirect(userID, requestID string, req *dto.UpdateAdRequestRequest) (*dto.AdRequestResponse, error)
	Delete(userID, requestID string) error
	AcceptNegotiation(userID, requestID string) (*dto.AdRequestResponse, error)
	RejectNegotiation(userID, requestID string) (*dto.AdRequestResponse, error)
	IncomingForSponsor(userID string) ([]dto.AdRequestResponse, error)
	AcceptIncoming(userID, requestID string) (*dto.AdRequestResponse, error)
	RejectIncoming(userID, requestID string) (*dto.AdRequestResponse, error)

	// Influencer side.
	ListPrivateForInfluencer(userID string) ([]dto.AdRequestResponse, error)
	UpdateStatusByInfluencer(userID, requestID string, req *dto.StatusUpdateRequest) (*dto.AdRequestResponse, error)
	Negotiate(userID, requestID string, req *dto.NegotiateRequest) (*dto.AdRequestResponse, error)
	Apply(userID string, req *dto.ApplyRequest) (*dto.AdRequestResponse, error)
}

type AdRequestServiceImpl struct {
	profileRepo   repositories.ProfileRepository
	campaignRepo  repositories.CampaignRepository
	adRequestRepo repositories.AdRequestRepository
}

func NewAdRequestService(
	profileRepo repositories.ProfileRepository,
	campaignRepo repositories.CampaignRepository,
	adRequestRepo repositories.AdRequestRepository,
) AdRequestService {
	return &AdRequestServiceImpl{
		profileRepo:   profileRepo,
		campaignRepo:  campaignRepo,
		adRequestRepo: adRequestRepo,
	}
}

// --- Sponsor side ---

func (s *AdRequestServiceImpl) ListForSponsor(userID string) ([]dto.AdRequestResponse, error) {
	campaigns, err := s.campaignRepo.FindBySponsor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	ids := make([]string, 0, len(campaigns))
	for i := range campaigns {
		ids = append(ids, campaigns[i].ID)
	}

	reqs, err := s.adRequestRepo.FindByCampaignIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponses(reqs)
}

// CreateDirect is the sponsor making an offer to a chosen influencer on
// one of the sponsor's own campaigns.
func (s *AdRequestServiceImpl) CreateDirect(userID string, req *dto.CreateAdRequestRequest) (*dto.AdRequestResponse, error) {
	campaign, err := s.campaignRepo.FindByID(req.CampaignID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	// Offers on someone else's campaign are refused outright, not hidden.
	if campaign.SponsorID != userID {
		return nil, apperrors.ErrCampaignForbidden
	}

	if _, err := s.profileRepo.FindInfluencer(req.InfluencerID); err != nil {
		if apperrors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	adRequest := &models.AdRequest{
		CampaignID:    req.CampaignID,
		InfluencerID:  req.InfluencerID,
		Requirements:  req.Requirements,
		PaymentAmount: req.PaymentAmount,
		Status:        models.AdRequestStatusPending,
	}
	if err := s.adRequestRepo.Create(adRequest); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.reload(adRequest.ID)
}

func (s *AdRequestServiceImpl) UpdateDirect(userID, requestID string, req *dto.UpdateAdRequestRequest) (*dto.AdRequestResponse, error) {
	adRequest, err := s.findSponsorOwnedRequest(userID, requestID)
	if err != nil {
		return nil, err
	}

	if req.Requirements != "" {
		adRequest.Requirements = req.Requirements
	}
	if req.PaymentAmount != nil {
		adRequest.PaymentAmount = *req.PaymentAmount
	}
	if req.Status != "" {
		adRequest.Status = models.AdRequestStatus(req.Status)
	}

	if err := s.adRequestRepo.Update(adRequest); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponse(adRequest)
}

func (s *AdRequestServiceImpl) Delete(userID, requestID string) error {
	if _, err := s.findSponsorOwnedRequest(userID, requestID); err != nil {
		return err
	}
	if err := s.adRequestRepo.Delete(requestID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// AcceptNegotiation accepts the influencer's counter-offer. The original
// payment amount is preserved; the negotiated amount stays on record.
func (s *AdRequestServiceImpl) AcceptNegotiation(userID, requestID string) (*dto.AdRequestResponse, error) {
	adRequest, err := s.findSponsorOwnedRequest(userID, requestID)
	if err != nil {
		return nil, err
	}

	if !adRequest.IsNegotiated || adRequest.NegotiatedPaymentAmount == nil {
		return nil, apperrors.ErrNoNegotiation
	}

	adRequest.Status = models.AdRequestStatusAccepted
	adRequest.IsNegotiated = false

	if err := s.adRequestRepo.Update(adRequest); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponse(adRequest)
}

// RejectNegotiation declines the counter-offer and resets the negotiated
// amount back to the sponsor's original offer. The request stays open.
// Unlike accept, reject has no precondition: rejecting a request that was
// never negotiated just restates the original offer.
func (s *AdRequestServiceImpl) RejectNegotiation(userID, requestID string) (*dto.AdRequestResponse, error) {
	adRequest, err := s.findSponsorOwnedRequest(userID, requestID)
	if err != nil {
		return nil, err
	}

	original := adRequest.PaymentAmount
	adRequest.NegotiatedPaymentAmount = &original
	adRequest.IsNegotiated = false

	if err := s.adRequestRepo.Update(adRequest); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponse(adRequest)
}

// IncomingForSponsor lists pending applications on the sponsor's public
// campaigns. Campaigns that already have an accepted request drop out.
func (s *AdRequestServiceImpl) IncomingForSponsor(userID string) ([]dto.AdRequestResponse, error) {
	campaigns, err := s.campaignRepo.FindPublicBySponsor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	open := make([]string, 0, len(campaigns))
	for i := range campaigns {
		taken, err := s.adRequestRepo.HasAccepted(campaigns[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !taken {
			open = append(open, campaigns[i].ID)
		}
	}

	reqs, err := s.adRequestRepo.FindPendingByCampaignIDs(open)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponses(reqs)
}

func (s *AdRequestServiceImpl) AcceptIncoming(userID, requestID string) (*dto.AdRequestResponse, error) {
	return s.setStatusBySponsor(userID, requestID, models.AdRequestStatusAccepted)
}

func (s *AdRequestServiceImpl) RejectIncoming(userID, requestID string) (*dto.AdRequestResponse, error) {
	return s.setStatusBySponsor(userID, requestID, models.AdRequestStatusRejected)
}

// --- Influencer side ---

func (s *AdRequestServiceImpl) ListPrivateForInfluencer(userID string) ([]dto.AdRequestResponse, error) {
	if err := s.requireCompleteInfluencer(userID); err != nil {
		return nil, err
	}

	reqs, err := s.adRequestRepo.FindPrivateByInfluencer(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponses(reqs)
}

func (s *AdRequestServiceImpl) UpdateStatusByInfluencer(userID, requestID string, req *dto.StatusUpdateRequest) (*dto.AdRequestResponse, error) {
	adRequest, err := s.findInfluencerOwnedRequest(userID, requestID)
	if err != nil {
		return nil, err
	}

	status := models.AdRequestStatus(req.Status)
	if status != models.AdRequestStatusAccepted && status != models.AdRequestStatusRejected {
		return nil, apperrors.ErrInvalidAdStatus
	}

	adRequest.Status = status
	if err := s.adRequestRepo.Update(adRequest); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponse(adRequest)
}

// Negotiate records the influencer's counter-offer and appends the
// message to the transcript.
func (s *AdRequestServiceImpl) Negotiate(userID, requestID string, req *dto.NegotiateRequest) (*dto.AdRequestResponse, error) {
	adRequest, err := s.findInfluencerOwnedRequest(userID, requestID)
	if err != nil {
		return nil, err
	}

	amount := req.PaymentAmount
	adRequest.IsNegotiated = true
	adRequest.NegotiatedPaymentAmount = &amount

	if req.Message != "" {
		if err := adRequest.AppendMessage("Influencer", req.Message); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if err := s.adRequestRepo.Update(adRequest); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponse(adRequest)
}

// Apply is the influencer applying to a public campaign. The payment
// amount defaults to the campaign budget until negotiated.
func (s *AdRequestServiceImpl) Apply(userID string, req *dto.ApplyRequest) (*dto.AdRequestResponse, error) {
	if err := s.requireCompleteInfluencer(userID); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindByID(req.CampaignID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if campaign.Visibility != models.VisibilityPublic {
		return nil, apperrors.ErrCampaignPrivate
	}

	taken, err := s.adRequestRepo.HasAccepted(campaign.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrCampaignTaken
	}

	if _, err := s.adRequestRepo.FindByCampaignAndInfluencer(campaign.ID, userID); err == nil {
		return nil, apperrors.ErrAlreadyApplied
	} else if !apperrors.Is(err, repositories.ErrAdRequestNotFound) {
		return nil, apperrors.InternalError(err)
	}

	adRequest := &models.AdRequest{
		CampaignID:    campaign.ID,
		InfluencerID:  userID,
		Requirements:  campaign.Goals,
		PaymentAmount: campaign.Budget,
		Status:        models.AdRequestStatusPending,
	}
	if err := s.adRequestRepo.Create(adRequest); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.reload(adRequest.ID)
}

// --- Helpers ---

func (s *AdRequestServiceImpl) setStatusBySponsor(userID, requestID string, status models.AdRequestStatus) (*dto.AdRequestResponse, error) {
	adRequest, err := s.findSponsorOwnedRequest(userID, requestID)
	if err != nil {
		return nil, err
	}

	adRequest.Status = status
	if err := s.adRequestRepo.Update(adRequest); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponse(adRequest)
}

func (s *AdRequestServiceImpl) findSponsorOwnedRequest(userID, requestID string) (*models.AdRequest, error) {
	adRequest, err := s.adRequestRepo.FindByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdRequestNotFound) {
			return nil, apperrors.ErrAdRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if adRequest.Campaign == nil || adRequest.Campaign.SponsorID != userID {
		return nil, apperrors.ErrAdRequestNotOwned
	}
	return adRequest, nil
}

func (s *AdRequestServiceImpl) findInfluencerOwnedRequest(userID, requestID string) (*models.AdRequest, error) {
	adRequest, err := s.adRequestRepo.FindByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdRequestNotFound) {
			return nil, apperrors.ErrAdRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if adRequest.InfluencerID != userID {
		return nil, apperrors.ErrAdRequestNotOwned
	}
	return adRequest, nil
}

func (s *AdRequestServiceImpl) requireCompleteInfluencer(userID string) error {
	influencer, err := s.profileRepo.FindInfluencer(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInfluencerNotFound) {
			return apperrors.ErrInfluencerNotFound
		}
		return apperrors.InternalError(err)
	}
	if !influencer.ProfileComplete() {
		return apperrors.ErrProfileIncomplete
	}
	return nil
}

// reload refetches with relations so names appear in the response.
func (s *AdRequestServiceImpl) reload(requestID string) (*dto.AdRequestResponse, error) {
	adRequest, err := s.adRequestRepo.FindByID(requestID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildAdRequestResponse(adRequest)
}

func buildAdRequestResponse(r *models.AdRequest) (*dto.AdRequestResponse, error) {
	transcript, err := r.Transcript()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	messages := make([]dto.TranscriptMessage, 0, len(transcript))
	for _, m := range transcript {
		messages = append(messages, dto.TranscriptMessage{From: m.From, Text: m.Text, At: m.At})
	}

	resp := &dto.AdRequestResponse{
		ID:                      r.ID,
		CampaignID:              r.CampaignID,
		InfluencerID:            r.InfluencerID,
		Requirements:            r.Requirements,
		PaymentAmount:           r.PaymentAmount,
		IsNegotiated:            r.IsNegotiated,
		NegotiatedPaymentAmount: r.NegotiatedPaymentAmount,
		Messages:                messages,
		Status:                  string(r.Status),
		Completed:               r.Completed,
	}
	if r.Campaign != nil {
		resp.CampaignName = r.Campaign.Name
		if r.Campaign.Sponsor != nil && r.Campaign.Sponsor.User != nil {
			resp.SponsorName = r.Campaign.Sponsor.User.Username
		}
	}
	if r.Influencer != nil && r.Influencer.User != nil {
		resp.InfluencerName = r.Influencer.User.Username
	}
	return resp, nil
}

func buildAdRequestResponses(reqs []models.AdRequest) ([]dto.AdRequestResponse, error) {
	result := make([]dto.AdRequestResponse, 0, len(reqs))
	for i := range reqs {
		resp, err := buildAdRequestResponse(&reqs[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}
