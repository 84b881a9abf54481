package dto

// SponsorProfileRequest completes or updates the sponsor role profile.
type SponsorProfileRequest struct {
	Industry    string `json:"industry" validate:"required"`
	SponsorType string `json:"sponsor_type" validate:"required"`
}

// InfluencerProfileRequest completes or updates the influencer role
// profile. Reach must be positive for the profile to count as complete.
type InfluencerProfileRequest struct {
	Category  string `json:"category" validate:"required"`
	Expertise string `json:"expertise" validate:"required"`
	Reach     int64  `json:"reach" validate:"required,gt=0"`
}

// UpdateInfluencerProfileRequest partially updates the influencer
// profile. Unset fields keep their current values; username changes go
// through here as well.
type UpdateInfluencerProfileRequest struct {
	Username  string `json:"username" validate:"omitempty,min=3,max=50"`
	Category  string `json:"category"`
	Expertise string `json:"expertise"`
	Reach     *int64 `json:"reach" validate:"omitempty,gt=0"`
}

type SponsorProfileResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Industry    string `json:"industry"`
	SponsorType string `json:"sponsor_type"`
	Flagged     string `json:"flagged"`
}

type InfluencerProfileResponse struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Category  string `json:"category"`
	Expertise string `json:"expertise"`
	Reach     int64  `json:"reach"`
	Flagged   string `json:"flagged"`
}

// InfluencerSearchFilter narrows the sponsor-side influencer directory.
// Bound from query parameters.
type InfluencerSearchFilter struct {
	Category  string `form:"category"`
	Expertise string `form:"expertise"`
	MinReach  int64  `form:"min_reach"`
}
