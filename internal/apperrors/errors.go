package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application error carried from services up to the HTTP
// layer. The code never reaches clients; they get status + message only.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Err      error  `json:"-"`
	HTTPCode int    `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors. Messages are part of the API surface: the frontend
// pattern-matches on several of them, so wording stays stable.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid token", http.StatusUnauthorized)

	ErrInvalidRole       = New(CodeInvalidUserRole, "Invalid or missing role. Allowed roles are: Admin, Sponsor, Influencer", http.StatusBadRequest)
	ErrAdminExists       = New(CodeAdminAlreadyExists, "An Admin already exists. Only one Admin is allowed.", http.StatusForbidden)
	ErrUserAlreadyExists = New(CodeUserAlreadyExists, "User already exists!", http.StatusConflict)
	ErrUserNotFound      = New(CodeUserNotFound, "User not found.", http.StatusNotFound)
	ErrPendingApproval   = New(CodePendingApproval, "Your account is pending approval by the admin.", http.StatusForbidden)

	ErrSponsorNotFound    = New(CodeProfileNotFound, "Sponsor not found.", http.StatusNotFound)
	ErrInfluencerNotFound = New(CodeProfileNotFound, "Influencer not found.", http.StatusNotFound)
	ErrProfileIncomplete  = New(CodeProfileIncomplete, "Profile incomplete. Please complete your profile first.", http.StatusForbidden)

	ErrCampaignNotFound  = New(CodeCampaignNotFound, "Campaign not found.", http.StatusNotFound)
	ErrCampaignNotOwned  = New(CodeCampaignNotOwned, "Campaign not found or you do not own this campaign.", http.StatusNotFound)
	ErrCampaignForbidden = New(CodeCampaignNotOwned, "You do not own this campaign.", http.StatusForbidden)
	ErrCampaignPrivate   = New(CodeCampaignPrivate, "Only public campaigns can be applied for.", http.StatusForbidden)
	ErrCampaignTaken     = New(CodeCampaignTaken, "This campaign has already been accepted by another influencer.", http.StatusForbidden)

	ErrAdRequestNotFound = New(CodeAdRequestNotFound, "Ad Request not found.", http.StatusNotFound)
	ErrAdRequestNotOwned = New(CodeAdRequestNotFound, "You do not own this ad request.", http.StatusForbidden)
	ErrAlreadyApplied    = New(CodeAlreadyApplied, "You have already applied for this campaign.", http.StatusBadRequest)
	ErrNoNegotiation     = New(CodeNoNegotiation, "No negotiated amount found for this request.", http.StatusBadRequest)
	ErrInvalidAdStatus   = New(CodeInvalidStatus, `Invalid status value. Must be "Accepted" or "Rejected".`, http.StatusBadRequest)

	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

func RoleMismatch(actualRole string) *AppError {
	return New(CodeRoleMismatch, fmt.Sprintf("Wrong role. You are registered with %s.", actualRole), http.StatusForbidden)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeUserNotFound, message, http.StatusNotFound)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}
