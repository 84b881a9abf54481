package dto

// SignupRequest registers a sponsor or influencer. Admin accounts are
// seeded at startup, not registered through the API.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginResponse struct {
	AccessToken       string `json:"access_token"`
	Role              string `json:"role"`
	Message           string `json:"message"`
	ProfileIncomplete bool   `json:"profile_incomplete"`
}

type SignupResponse struct {
	Message string `json:"message"`
}
