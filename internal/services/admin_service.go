package services

import (
	"sponsorhub_backend/internal/apperrors"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"
	"sponsorhub_backend/internal/services/dto"
)

// recentFeedSize bounds the admin activity feed.
const recentFeedSize = 10

type AdminService interface {
	Dashboard() (*dto.AdminDashboardResponse, error)

	ListSponsors() ([]dto.UserSummary, error)
	ListInfluencers() ([]dto.UserSummary, error)
	ListPendingApprovals() ([]dto.UserSummary, error)
	ListCampaigns() ([]dto.CampaignResponse, error)

	// User moderation reports the moderated account's role so the caller
	// can invalidate the right cached views.
	ApproveUser(userID string) (models.UserRole, error)
	FlagUser(userID string) (models.UserRole, error)
	UnflagUser(userID string) (models.UserRole, error)
	FlagCampaign(campaignID string) error
	UnflagCampaign(campaignID string) error
}

type AdminServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	campaignRepo  repositories.CampaignRepository
	adRequestRepo repositories.AdRequestRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	campaignRepo repositories.CampaignRepository,
	adRequestRepo repositories.AdRequestRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		campaignRepo:  campaignRepo,
		adRequestRepo: adRequestRepo,
	}
}

// Dashboard aggregates platform-wide counts plus the latest activity.
// The handler layer caches the result under a short TTL.
func (s *AdminServiceImpl) Dashboard() (*dto.AdminDashboardResponse, error) {
	stats, err := s.collectStats()
	if err != nil {
		return nil, err
	}

	recent, err := s.adRequestRepo.FindRecent(recentFeedSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	feed := make([]dto.RecentAdRequest, 0, len(recent))
	for i := range recent {
		r := &recent[i]
		row := dto.RecentAdRequest{
			ID:            r.ID,
			PaymentAmount: r.PaymentAmount,
			Status:        string(r.Status),
		}
		if r.Campaign != nil {
			row.CampaignName = r.Campaign.Name
			if r.Campaign.Sponsor != nil && r.Campaign.Sponsor.User != nil {
				row.SponsorName = r.Campaign.Sponsor.User.Username
			}
		}
		if r.Influencer != nil && r.Influencer.User != nil {
			row.InfluencerName = r.Influencer.User.Username
		}
		feed = append(feed, row)
	}

	return &dto.AdminDashboardResponse{
		Stats:            *stats,
		RecentAdRequests: feed,
	}, nil
}

func (s *AdminServiceImpl) ListSponsors() ([]dto.UserSummary, error) {
	sponsors, err := s.profileRepo.FindAllSponsors()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.UserSummary, 0, len(sponsors))
	for i := range sponsors {
		sp := &sponsors[i]
		row := dto.UserSummary{
			UserID:      sp.UserID,
			Role:        string(models.UserRoleSponsor),
			Industry:    sp.Industry,
			SponsorType: sp.SponsorType,
		}
		if sp.User != nil {
			row.Username = sp.User.Username
			row.Email = sp.User.Email
			row.Flagged = string(sp.User.Flagged)
		}
		result = append(result, row)
	}
	return result, nil
}

func (s *AdminServiceImpl) ListInfluencers() ([]dto.UserSummary, error) {
	influencers, err := s.profileRepo.FindAllInfluencers()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.UserSummary, 0, len(influencers))
	for i := range influencers {
		inf := &influencers[i]
		row := dto.UserSummary{
			UserID:    inf.UserID,
			Role:      string(models.UserRoleInfluencer),
			Category:  inf.Category,
			Expertise: inf.Expertise,
			Reach:     inf.Reach,
		}
		if inf.User != nil {
			row.Username = inf.User.Username
			row.Email = inf.User.Email
			row.Flagged = string(inf.User.Flagged)
		}
		result = append(result, row)
	}
	return result, nil
}

// ListPendingApprovals returns sponsors and influencers who have not been
// activated yet, including accounts re-flagged after review.
func (s *AdminServiceImpl) ListPendingApprovals() ([]dto.UserSummary, error) {
	var result []dto.UserSummary
	for _, role := range []models.UserRole{models.UserRoleSponsor, models.UserRoleInfluencer} {
		users, err := s.userRepo.FindUnapprovedByRole(role)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		for i := range users {
			u := &users[i]
			result = append(result, dto.UserSummary{
				UserID:   u.ID,
				Username: u.Username,
				Email:    u.Email,
				Role:     string(u.Role),
				Flagged:  string(u.Flagged),
			})
		}
	}
	if result == nil {
		result = []dto.UserSummary{}
	}
	return result, nil
}

func (s *AdminServiceImpl) ListCampaigns() ([]dto.CampaignResponse, error) {
	campaigns, err := s.campaignRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		result = append(result, *buildCampaignResponse(&campaigns[i]))
	}
	return result, nil
}

// ApproveUser activates an account so it can log in. Re-approving an
// already active account is a no-op.
func (s *AdminServiceImpl) ApproveUser(userID string) (models.UserRole, error) {
	return s.setUserFlag(userID, models.FlagStatusActive)
}

func (s *AdminServiceImpl) FlagUser(userID string) (models.UserRole, error) {
	return s.setUserFlag(userID, models.FlagStatusFlagged)
}

func (s *AdminServiceImpl) UnflagUser(userID string) (models.UserRole, error) {
	return s.setUserFlag(userID, models.FlagStatusActive)
}

func (s *AdminServiceImpl) FlagCampaign(campaignID string) error {
	return s.setCampaignFlag(campaignID, models.FlagStatusFlagged)
}

func (s *AdminServiceImpl) UnflagCampaign(campaignID string) error {
	return s.setCampaignFlag(campaignID, models.FlagStatusActive)
}

// --- Helpers ---

func (s *AdminServiceImpl) setUserFlag(userID string, flag models.FlagStatus) (models.UserRole, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.InternalError(err)
	}
	// The admin account itself is never subject to moderation.
	if user.Role == models.UserRoleAdmin {
		return "", apperrors.NewForbiddenError("Cannot moderate the admin account.")
	}
	if err := s.userRepo.UpdateFlag(userID, flag); err != nil {
		return "", apperrors.InternalError(err)
	}
	return user.Role, nil
}

func (s *AdminServiceImpl) setCampaignFlag(campaignID string, flag models.FlagStatus) error {
	if err := s.campaignRepo.UpdateFlag(campaignID, flag); err != nil {
		if apperrors.Is(err, repositories.ErrCampaignNotFound) {
			return apperrors.ErrCampaignNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) collectStats() (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.TotalSponsors, err = s.userRepo.CountByRole(models.UserRoleSponsor); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.FlaggedSponsors, err = s.userRepo.CountByRoleAndFlag(models.UserRoleSponsor, models.FlagStatusFlagged); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalInfluencers, err = s.userRepo.CountByRole(models.UserRoleInfluencer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.FlaggedInfluencers, err = s.userRepo.CountByRoleAndFlag(models.UserRoleInfluencer, models.FlagStatusFlagged); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if stats.TotalCampaigns, err = s.campaignRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PublicCampaigns, err = s.campaignRepo.CountByVisibility(models.VisibilityPublic); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PrivateCampaigns, err = s.campaignRepo.CountByVisibility(models.VisibilityPrivate); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.FlaggedCampaigns, err = s.campaignRepo.CountFlagged(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if stats.TotalAdRequests, err = s.adRequestRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.PendingAdRequests, err = s.adRequestRepo.CountByStatus(models.AdRequestStatusPending); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.AcceptedAdRequests, err = s.adRequestRepo.CountByStatus(models.AdRequestStatusAccepted); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.RejectedAdRequests, err = s.adRequestRepo.CountByStatus(models.AdRequestStatusRejected); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return stats, nil
}
