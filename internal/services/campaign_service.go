package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"sponsorhub_backend/internal/apperrors"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"
	"sponsorhub_backend/internal/services/dto"
)

type CampaignService interface {
	ListForSponsor(userID string) ([]dto.CampaignResponse, error)
	Create(userID string, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	Get(userID, campaignID string) (*dto.CampaignResponse, error)
	Update(userID, campaignID string, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error)
	Delete(userID, campaignID string) error
	ExportCSV(userID string) ([]byte, error)

	// InfluencerDashboard lists public, unflagged campaigns that are still
	// open, annotated with the influencer's own application status.
	InfluencerDashboard(userID string, filter dto.DashboardFilter) ([]dto.DashboardCampaign, error)
	GetPublicCampaign(userID, campaignID string) (*dto.DashboardCampaign, error)
}

type CampaignServiceImpl struct {
	profileRepo   repositories.ProfileRepository
	campaignRepo  repositories.CampaignRepository
	adRequestRepo repositories.AdRequestRepository
}

func NewCampaignService(
	profileRepo repositories.ProfileRepository,
	campaignRepo repositories.CampaignRepository,
	adRequestRepo repositories.AdRequestRepository,
) CampaignService {
	return &CampaignServiceImpl{
		profileRepo:   profileRepo,
		campaignRepo:  campaignRepo,
		adRequestRepo: adRequestRepo,
	}
}

func (s *CampaignServiceImpl) ListForSponsor(userID string) ([]dto.CampaignResponse, error) {
	if err := s.requireCompleteSponsor(userID); err != nil {
		return nil, err
	}

	// Campaigns pulled by moderation disappear from the sponsor's own views.
	campaigns, err := s.campaignRepo.FindActiveBySponsor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		result = append(result, *buildCampaignResponse(&campaigns[i]))
	}
	return result, nil
}

func (s *CampaignServiceImpl) Create(userID string, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	if err := s.requireCompleteSponsor(userID); err != nil {
		return nil, err
	}

	campaign := &models.Campaign{
		SponsorID:   userID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Visibility:  models.CampaignVisibility(req.Visibility),
		Goals:       req.Goals,
		Category:    req.Category,
		Flagged:     models.FlagStatusActive,
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildCampaignResponse(campaign), nil
}

func (s *CampaignServiceImpl) Get(userID, campaignID string) (*dto.CampaignResponse, error) {
	campaign, err := s.findOwnedCampaign(userID, campaignID)
	if err != nil {
		return nil, err
	}
	return buildCampaignResponse(campaign), nil
}

func (s *CampaignServiceImpl) Update(userID, campaignID string, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	campaign, err := s.findOwnedCampaign(userID, campaignID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		campaign.Name = req.Name
	}
	if req.Description != "" {
		campaign.Description = req.Description
	}
	if req.StartDate != "" {
		campaign.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		campaign.EndDate = req.EndDate
	}
	if req.Budget != nil {
		campaign.Budget = *req.Budget
	}
	if req.Visibility != "" {
		campaign.Visibility = models.CampaignVisibility(req.Visibility)
	}
	if req.Goals != "" {
		campaign.Goals = req.Goals
	}
	if req.Category != "" {
		campaign.Category = req.Category
	}

	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildCampaignResponse(campaign), nil
}

func (s *CampaignServiceImpl) Delete(userID, campaignID string) error {
	if _, err := s.findOwnedCampaign(userID, campaignID); err != nil {
		return err
	}
	if err := s.campaignRepo.Delete(campaignID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ExportCSV renders the sponsor's campaigns as a CSV document for
// download.
func (s *CampaignServiceImpl) ExportCSV(userID string) ([]byte, error) {
	if err := s.requireCompleteSponsor(userID); err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.FindActiveBySponsor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Name", "Description", "Start Date", "End Date", "Budget", "Visibility", "Goals", "Category"}
	if err := w.Write(header); err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range campaigns {
		c := &campaigns[i]
		row := []string{
			c.Name, c.Description, c.StartDate, c.EndDate,
			fmt.Sprintf("%.2f", c.Budget), string(c.Visibility), c.Goals, c.Category,
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buf.Bytes(), nil
}

func (s *CampaignServiceImpl) InfluencerDashboard(userID string, filter dto.DashboardFilter) ([]dto.DashboardCampaign, error) {
	influencer, err := s.requireCompleteInfluencer(userID)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.FindPublic(repositories.CampaignFilter{
		Category:  filter.Category,
		MinBudget: filter.MinBudget,
		MaxBudget: filter.MaxBudget,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.DashboardCampaign, 0, len(campaigns))
	for i := range campaigns {
		c := &campaigns[i]
		if c.Flagged != models.FlagStatusActive {
			continue
		}

		// Campaigns already taken by some influencer drop off the feed.
		taken, err := s.adRequestRepo.HasAccepted(c.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			continue
		}

		status, err := s.applicationStatus(c.ID, influencer.UserID)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.DashboardCampaign{
			CampaignResponse:  *buildCampaignResponse(c),
			ApplicationStatus: status,
		})
	}
	return result, nil
}

func (s *CampaignServiceImpl) GetPublicCampaign(userID, campaignID string) (*dto.DashboardCampaign, error) {
	influencer, err := s.requireCompleteInfluencer(userID)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if campaign.Visibility != models.VisibilityPublic {
		return nil, apperrors.ErrCampaignNotFound
	}

	status, err := s.applicationStatus(campaign.ID, influencer.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardCampaign{
		CampaignResponse:  *buildCampaignResponse(campaign),
		ApplicationStatus: status,
	}, nil
}

// --- Helpers ---

func (s *CampaignServiceImpl) requireCompleteSponsor(userID string) error {
	sponsor, err := s.profileRepo.FindSponsor(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSponsorNotFound) {
			return apperrors.ErrSponsorNotFound
		}
		return apperrors.InternalError(err)
	}
	if !sponsor.ProfileComplete() {
		return apperrors.ErrProfileIncomplete
	}
	return nil
}

func (s *CampaignServiceImpl) requireCompleteInfluencer(userID string) (*models.Influencer, error) {
	influencer, err := s.profileRepo.FindInfluencer(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !influencer.ProfileComplete() {
		return nil, apperrors.ErrProfileIncomplete
	}
	return influencer, nil
}

func (s *CampaignServiceImpl) findOwnedCampaign(userID, campaignID string) (*models.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, apperrors.ErrCampaignNotOwned
		}
		return nil, apperrors.InternalError(err)
	}
	// Ownership failures look identical to missing campaigns on purpose.
	if campaign.SponsorID != userID {
		return nil, apperrors.ErrCampaignNotOwned
	}
	return campaign, nil
}

func (s *CampaignServiceImpl) applicationStatus(campaignID, influencerID string) (string, error) {
	existing, err := s.adRequestRepo.FindByCampaignAndInfluencer(campaignID, influencerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdRequestNotFound) {
			return "Not Applied", nil
		}
		return "", apperrors.InternalError(err)
	}
	return string(existing.Status), nil
}

func buildCampaignResponse(c *models.Campaign) *dto.CampaignResponse {
	resp := &dto.CampaignResponse{
		ID:          c.ID,
		SponsorID:   c.SponsorID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Budget:      c.Budget,
		Visibility:  string(c.Visibility),
		Goals:       c.Goals,
		Category:    c.Category,
		Flagged:     string(c.Flagged),
	}
	if c.Sponsor != nil && c.Sponsor.User != nil {
		resp.SponsorName = c.Sponsor.User.Username
	}
	return resp
}
