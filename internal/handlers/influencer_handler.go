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

type InfluencerHandler struct {
	*BaseHandler
	profileService   services.ProfileService
	campaignService  services.CampaignService
	adRequestService services.AdRequestService
	cache            *cache.Cache
}

func NewInfluencerHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	campaignService services.CampaignService,
	adRequestService services.AdRequestService,
	c *cache.Cache,
) *InfluencerHandler {
	return &InfluencerHandler{
		BaseHandler:      base,
		profileService:   profileService,
		campaignService:  campaignService,
		adRequestService: adRequestService,
		cache:            c,
	}
}

func (h *InfluencerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	influencer := rg.Group("/influencer")
	influencer.Use(middleware.AuthMiddleware())
	influencer.Use(middleware.RequireRole(models.UserRoleInfluencer))
	{
		influencer.GET("/profile", h.GetProfile)
		influencer.POST("/profile", h.CompleteProfile)
		influencer.PUT("/profile", h.UpdateProfile)

		influencer.GET("/dashboard", h.Dashboard)
		influencer.GET("/campaign/:id", h.GetCampaign)
		influencer.POST("/apply", h.Apply)

		influencer.GET("/ad-requests", h.ListAdRequests)
		influencer.PUT("/ad-request/:id/status", h.UpdateStatus)
		influencer.PUT("/ad-request/:id/negotiate", h.Negotiate)
	}
}

// GetProfile serves the influencer's own profile through the
// read-through cache.
func (h *InfluencerHandler) GetProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	key := cache.InfluencerProfileKey(userID)

	var cached dto.InfluencerProfileResponse
	if h.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	resp, err := h.profileService.GetInfluencerProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.SetJSON(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}

func (h *InfluencerHandler) CompleteProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.InfluencerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.CompleteInfluencerProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.Delete(c.Request.Context(), cache.InfluencerProfileKey(userID))
	c.JSON(http.StatusOK, resp)
}

func (h *InfluencerHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInfluencerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateInfluencerProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.Delete(c.Request.Context(), cache.InfluencerProfileKey(userID))
	c.JSON(http.StatusOK, resp)
}

// Dashboard serves the public campaign feed, memoized per influencer and
// filter arguments.
func (h *InfluencerHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var filter dto.DashboardFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	ctx := c.Request.Context()
	key := cache.InfluencerDashboardKey(userID, filter.Category, filter.MinBudget, filter.MaxBudget)

	var cached []dto.DashboardCampaign
	if h.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	resp, err := h.campaignService.InfluencerDashboard(userID, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.SetJSON(ctx, key, resp)
	c.JSON(http.StatusOK, resp)
}

func (h *InfluencerHandler) GetCampaign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.campaignService.GetPublicCampaign(userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InfluencerHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adRequestService.Apply(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InfluencerHandler) ListAdRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.adRequestService.ListPrivateForInfluencer(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InfluencerHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.StatusUpdateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adRequestService.UpdateStatusByInfluencer(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InfluencerHandler) Negotiate(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.NegotiateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adRequestService.Negotiate(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
