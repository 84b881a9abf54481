package services

import (
	"sponsorhub_backend/internal/email"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService      AuthService
	ProfileService   ProfileService
	CampaignService  CampaignService
	AdRequestService AdRequestService
	AdminService     AdminService
	EmailProvider    email.Provider
}
