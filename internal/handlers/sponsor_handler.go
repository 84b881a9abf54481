package handlers

import (
	"net/http"

	"sponsorhub_backend/internal/cache"
	"sponsorhub_backend/internal/middleware"
	"sponsorhub_backend/internal/models"
	"sponsorhub_backend/internal/services"
	"sponsorhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SponsorHandler struct {
	*BaseHandler
	profileService   services.ProfileService
	campaignService  services.CampaignService
	adRequestService services.AdRequestService
	cache            *cache.Cache
}

func NewSponsorHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	campaignService services.CampaignService,
	adRequestService services.AdRequestService,
	c *cache.Cache,
) *SponsorHandler {
	return &SponsorHandler{
		BaseHandler:      base,
		profileService:   profileService,
		campaignService:  campaignService,
		adRequestService: adRequestService,
		cache:            c,
	}
}

func (h *SponsorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sponsor := rg.Group("/sponsor")
	sponsor.Use(middleware.AuthMiddleware())
	sponsor.Use(middleware.RequireRole(models.UserRoleSponsor))
	{
		sponsor.GET("/profile", h.GetProfile)
		sponsor.POST("/profile", h.CompleteProfile)

		sponsor.GET("/campaigns", h.ListCampaigns)
		sponsor.POST("/campaigns", h.CreateCampaign)
		sponsor.GET("/export-campaigns", h.ExportCampaigns)
		sponsor.GET("/campaigns/:id", h.GetCampaign)
		sponsor.PUT("/campaigns/:id", h.UpdateCampaign)
		sponsor.DELETE("/campaigns/:id", h.DeleteCampaign)

		sponsor.GET("/ad-requests", h.ListAdRequests)
		sponsor.POST("/ad-requests", h.CreateAdRequest)
		sponsor.PUT("/ad-requests/:id", h.UpdateAdRequest)
		sponsor.DELETE("/ad-requests/:id", h.DeleteAdRequest)
		sponsor.PUT("/ad-requests/:id/accept", h.AcceptNegotiation)
		sponsor.PUT("/ad-requests/:id/reject", h.RejectNegotiation)

		sponsor.GET("/incoming-requests", h.ListIncomingRequests)
		sponsor.PUT("/incoming-requests/:id/accept", h.AcceptIncoming)
		sponsor.PUT("/incoming-requests/:id/reject", h.RejectIncoming)

		sponsor.GET("/influencers", h.SearchInfluencers)
	}
}

func (h *SponsorHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetSponsorProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) CompleteProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SponsorProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.CompleteSponsorProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.Delete(c.Request.Context(), cache.SponsorCampaignsKey(userID))
	c.JSON(http.StatusOK, resp)
}

// ListCampaigns serves the sponsor's campaign list through the
// read-through cache.
func (h *SponsorHandler) ListCampaigns(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := cache.SponsorCampaignsKey(userID)

	var cached []dto.CampaignResponse
	if h.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	resp, err := h.campaignService.ListForSponsor(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.SetJSON(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) CreateCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.campaignService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.Delete(c.Request.Context(), cache.SponsorCampaignsKey(userID))
	c.JSON(http.StatusCreated, resp)
}

func (h *SponsorHandler) GetCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.Get(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) UpdateCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.campaignService.Update(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) DeleteCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.campaignService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully."})
}

func (h *SponsorHandler) ExportCampaigns(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	data, err := h.campaignService.ExportCSV(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="campaigns.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *SponsorHandler) ListAdRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.adRequestService.ListForSponsor(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) CreateAdRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAdRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adRequestService.CreateDirect(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SponsorHandler) UpdateAdRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAdRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adRequestService.UpdateDirect(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) DeleteAdRequest(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.adRequestService.Delete(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ad request deleted successfully."})
}

func (h *SponsorHandler) AcceptNegotiation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.adRequestService.AcceptNegotiation(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) RejectNegotiation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.adRequestService.RejectNegotiation(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) ListIncomingRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.adRequestService.IncomingForSponsor(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) AcceptIncoming(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.adRequestService.AcceptIncoming(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SponsorHandler) RejectIncoming(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.adRequestService.RejectIncoming(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchInfluencers serves the influencer directory, memoized per filter
// arguments.
func (h *SponsorHandler) SearchInfluencers(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var filter dto.InfluencerSearchFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	ctx := c.Request.Context()
	key := cache.InfluencerDirectoryKey(filter.Category, filter.Expertise, filter.MinReach)

	var cached []dto.InfluencerProfileResponse
	if h.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	resp, err := h.profileService.SearchInfluencers(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.SetJSON(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}
