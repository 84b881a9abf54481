package services

import (
	"sponsorhub_backend/internal/apperrors"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"
	"sponsorhub_backend/internal/services/dto"
)

type ProfileService interface {
	CompleteSponsorProfile(userID string, req *dto.SponsorProfileRequest) (*dto.SponsorProfileResponse, error)
	CompleteInfluencerProfile(userID string, req *dto.InfluencerProfileRequest) (*dto.InfluencerProfileResponse, error)
	UpdateInfluencerProfile(userID string, req *dto.UpdateInfluencerProfileRequest) (*dto.InfluencerProfileResponse, error)

	GetSponsorProfile(userID string) (*dto.SponsorProfileResponse, error)
	GetInfluencerProfile(userID string) (*dto.InfluencerProfileResponse, error)

	// SearchInfluencers powers the sponsor-side influencer directory.
	SearchInfluencers(filter dto.InfluencerSearchFilter) ([]dto.InfluencerProfileResponse, error)
}

type ProfileServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *ProfileServiceImpl) CompleteSponsorProfile(userID string, req *dto.SponsorProfileRequest) (*dto.SponsorProfileResponse, error) {
	sponsor, err := s.profileRepo.FindSponsor(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, apperrors.ErrSponsorNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	sponsor.Industry = req.Industry
	sponsor.SponsorType = req.SponsorType

	if err := s.profileRepo.UpdateSponsor(sponsor); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildSponsorResponse(sponsor), nil
}

func (s *ProfileServiceImpl) CompleteInfluencerProfile(userID string, req *dto.InfluencerProfileRequest) (*dto.InfluencerProfileResponse, error) {
	influencer, err := s.profileRepo.FindInfluencer(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	influencer.Category = req.Category
	influencer.Expertise = req.Expertise
	influencer.Reach = req.Reach

	if err := s.profileRepo.UpdateInfluencer(influencer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildInfluencerResponse(influencer), nil
}

func (s *ProfileServiceImpl) UpdateInfluencerProfile(userID string, req *dto.UpdateInfluencerProfileRequest) (*dto.InfluencerProfileResponse, error) {
	influencer, err := s.profileRepo.FindInfluencer(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Category != "" {
		influencer.Category = req.Category
	}
	if req.Expertise != "" {
		influencer.Expertise = req.Expertise
	}
	if req.Reach != nil {
		influencer.Reach = *req.Reach
	}
	if err := s.profileRepo.UpdateInfluencer(influencer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Username != "" {
		user, err := s.userRepo.FindByID(userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Username = req.Username
		if err := s.userRepo.Update(user); err != nil {
			return nil, apperrors.InternalError(err)
		}
		influencer.User = user
	}

	return s.buildInfluencerResponse(influencer), nil
}

func (s *ProfileServiceImpl) GetSponsorProfile(userID string) (*dto.SponsorProfileResponse, error) {
	sponsor, err := s.profileRepo.FindSponsor(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSponsorNotFound) {
			return nil, apperrors.ErrSponsorNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildSponsorResponse(sponsor), nil
}

func (s *ProfileServiceImpl) GetInfluencerProfile(userID string) (*dto.InfluencerProfileResponse, error) {
	influencer, err := s.profileRepo.FindInfluencer(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildInfluencerResponse(influencer), nil
}

func (s *ProfileServiceImpl) SearchInfluencers(filter dto.InfluencerSearchFilter) ([]dto.InfluencerProfileResponse, error) {
	influencers, err := s.profileRepo.FindInfluencers(repositories.InfluencerFilter{
		Category:  filter.Category,
		Expertise: filter.Expertise,
		MinReach:  filter.MinReach,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.InfluencerProfileResponse, 0, len(influencers))
	for i := range influencers {
		inf := &influencers[i]
		// Flagged accounts stay out of the public directory.
		if inf.User == nil || inf.User.Flagged != models.FlagStatusActive {
			continue
		}
		result = append(result, *s.buildInfluencerResponse(inf))
	}
	return result, nil
}

func (s *ProfileServiceImpl) buildSponsorResponse(sponsor *models.Sponsor) *dto.SponsorProfileResponse {
	resp := &dto.SponsorProfileResponse{
		UserID:      sponsor.UserID,
		Industry:    sponsor.Industry,
		SponsorType: sponsor.SponsorType,
	}
	if sponsor.User != nil {
		resp.Username = sponsor.User.Username
		resp.Email = sponsor.User.Email
		resp.Flagged = string(sponsor.User.Flagged)
	}
	return resp
}

func (s *ProfileServiceImpl) buildInfluencerResponse(influencer *models.Influencer) *dto.InfluencerProfileResponse {
	resp := &dto.InfluencerProfileResponse{
		UserID:    influencer.UserID,
		Category:  influencer.Category,
		Expertise: influencer.Expertise,
		Reach:     influencer.Reach,
	}
	if influencer.User != nil {
		resp.Username = influencer.User.Username
		resp.Email = influencer.User.Email
		resp.Flagged = string(influencer.User.Flagged)
	}
	return resp
}
