package models

type UserRole string

const (
	UserRoleAdmin      UserRole = "Admin"
	UserRoleSponsor    UserRole = "Sponsor"
	UserRoleInfluencer UserRole = "Influencer"
)

func ValidUserRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleSponsor, UserRoleInfluencer:
		return true
	}
	return false
}

// FlagStatus is the moderation/approval state of accounts and campaigns.
// The zero value (empty string) means "never reviewed" and is treated the
// same as Flagged for login gating.
type FlagStatus string

const (
	FlagStatusActive  FlagStatus = "Active"
	FlagStatusFlagged FlagStatus = "Flagged"
)

type CampaignVisibility string

const (
	VisibilityPublic  CampaignVisibility = "public"
	VisibilityPrivate CampaignVisibility = "private"
)

func ValidVisibility(v CampaignVisibility) bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

type AdRequestStatus string

const (
	AdRequestStatusPending  AdRequestStatus = "Pending"
	AdRequestStatusAccepted AdRequestStatus = "Accepted"
	AdRequestStatusRejected AdRequestStatus = "Rejected"
)

func ValidAdRequestStatus(s AdRequestStatus) bool {
	switch s {
	case AdRequestStatusPending, AdRequestStatusAccepted, AdRequestStatusRejected:
		return true
	}
	return false
}
