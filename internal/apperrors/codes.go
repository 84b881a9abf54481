package apperrors

// Error codes used for logging and programmatic matching on the server
// side. The HTTP response body only ever carries the message.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidToken       = "INVALID_TOKEN"

	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUserAlreadyExists  = "USER_ALREADY_EXISTS"
	CodeAdminAlreadyExists = "ADMIN_ALREADY_EXISTS"
	CodeInvalidUserRole    = "INVALID_USER_ROLE"
	CodeRoleMismatch       = "ROLE_MISMATCH"
	CodePendingApproval    = "PENDING_APPROVAL"

	CodeProfileNotFound   = "PROFILE_NOT_FOUND"
	CodeProfileIncomplete = "PROFILE_INCOMPLETE"

	CodeCampaignNotFound = "CAMPAIGN_NOT_FOUND"
	CodeCampaignNotOwned = "CAMPAIGN_NOT_OWNED"
	CodeCampaignPrivate  = "CAMPAIGN_PRIVATE"
	CodeCampaignTaken    = "CAMPAIGN_TAKEN"

	CodeAdRequestNotFound = "AD_REQUEST_NOT_FOUND"
	CodeAlreadyApplied    = "ALREADY_APPLIED"
	CodeNoNegotiation     = "NO_NEGOTIATION"
	CodeInvalidStatus     = "INVALID_STATUS"

	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternalError    = "INTERNAL_ERROR"
)
