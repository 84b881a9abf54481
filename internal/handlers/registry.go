package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	SponsorHandler    *SponsorHandler
	InfluencerHandler *InfluencerHandler
	AdminHandler      *AdminHandler
}
