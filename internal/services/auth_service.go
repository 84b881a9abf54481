package services

import (
	"sponsorhub_backend/internal/apperrors"
	"sponsorhub_backend/internal/auth"
	"sponsorhub_backend/internal/logger"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/repositories"
	"sponsorhub_backend/internal/services/dto"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Signup registers a new sponsor or influencer. New accounts start
// unapproved and cannot log in until the admin activates them.
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) error {
	role := models.UserRole(req.Role)
	if !models.ValidUserRole(role) {
		return apperrors.ErrInvalidRole
	}

	// A single admin is seeded at startup; the API never creates another.
	if role == models.UserRoleAdmin {
		exists, err := s.userRepo.AdminExists()
		if err != nil {
			return apperrors.InternalError(err)
		}
		if exists {
			return apperrors.ErrAdminExists
		}
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return apperrors.ErrUserAlreadyExists
	} else if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	flag := models.FlagStatusFlagged
	if role == models.UserRoleAdmin {
		flag = models.FlagStatusActive
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Flagged:      flag,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrUserAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	if err := s.createRoleProfile(user); err != nil {
		if delErr := s.userRepo.Delete(user.ID); delErr != nil {
			logger.Error("Failed to remove user after profile creation error",
				"user_id", user.ID, "error", delErr.Error())
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// Login authenticates against email+password and enforces the declared
// role, the admin approval gate and profile completeness reporting.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if string(user.Role) != req.Role {
		return nil, apperrors.RoleMismatch(string(user.Role))
	}

	if !user.ApprovedForLogin() {
		return nil, apperrors.ErrPendingApproval
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:       accessToken,
		Role:              string(user.Role),
		Message:           "Login successful",
		ProfileIncomplete: s.profileIncomplete(user),
	}, nil
}

// createRoleProfile creates the empty role profile row for the new user.
func (s *AuthServiceImpl) createRoleProfile(user *models.User) error {
	switch user.Role {
	case models.UserRoleSponsor:
		return s.profileRepo.CreateSponsor(&models.Sponsor{UserID: user.ID})
	case models.UserRoleInfluencer:
		return s.profileRepo.CreateInfluencer(&models.Influencer{UserID: user.ID})
	}
	return nil
}

func (s *AuthServiceImpl) profileIncomplete(user *models.User) bool {
	switch user.Role {
	case models.UserRoleSponsor:
		return !user.Sponsor.ProfileComplete()
	case models.UserRoleInfluencer:
		return !user.Influencer.ProfileComplete()
	}
	return false
}
