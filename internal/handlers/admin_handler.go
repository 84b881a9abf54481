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

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
	cache        *cache.Cache
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, c *cache.Cache) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
		cache:        c,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRole(models.UserRoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/sponsors", h.ListSponsors)
		admin.GET("/influencers", h.ListInfluencers)
		admin.GET("/pending_approvals", h.ListPendingApprovals)
		admin.GET("/campaigns", h.ListCampaigns)

		admin.POST("/users/:id/approve", h.ApproveUser)
		admin.POST("/users/:id/flag", h.FlagUser)
		admin.POST("/users/:id/unflag", h.UnflagUser)

		admin.POST("/campaigns/:id/flag", h.FlagCampaign)
		admin.POST("/campaigns/:id/unflag", h.UnflagCampaign)
	}
}

// Dashboard serves the platform stats through the read-through cache.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var cached dto.AdminDashboardResponse
	if h.cache.GetJSON(ctx, cache.AdminDashboardKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	resp, err := h.adminService.Dashboard()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cache.SetJSON(ctx, cache.AdminDashboardKey, resp)
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListSponsors(c *gin.Context) {
	resp, err := h.adminService.ListSponsors()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListInfluencers(c *gin.Context) {
	resp, err := h.adminService.ListInfluencers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListPendingApprovals(c *gin.Context) {
	resp, err := h.adminService.ListPendingApprovals()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListCampaigns(c *gin.Context) {
	resp, err := h.adminService.ListCampaigns()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ApproveUser(c *gin.Context) {
	h.moderateUser(c, h.adminService.ApproveUser, "User approved successfully.")
}

// FlagUser suspends the account and eagerly drops the cached views its
// data feeds into.
func (h *AdminHandler) FlagUser(c *gin.Context) {
	h.moderateUser(c, h.adminService.FlagUser, "User flagged successfully.")
}

func (h *AdminHandler) UnflagUser(c *gin.Context) {
	h.moderateUser(c, h.adminService.UnflagUser, "User unflagged successfully.")
}

func (h *AdminHandler) FlagCampaign(c *gin.Context) {
	h.moderateCampaign(c, h.adminService.FlagCampaign, "Campaign flagged successfully.")
}

func (h *AdminHandler) UnflagCampaign(c *gin.Context) {
	h.moderateCampaign(c, h.adminService.UnflagCampaign, "Campaign unflagged successfully.")
}

// moderateUser applies a flag change and eagerly drops the cached views
// that account feeds into. Only sponsor flag changes invalidate the
// dashboard; everything else ages out on TTL.
func (h *AdminHandler) moderateUser(c *gin.Context, action func(string) (models.UserRole, error), message string) {
	userID := c.Param("id")
	role, err := action(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	switch role {
	case models.UserRoleSponsor:
		h.cache.Delete(c.Request.Context(),
			cache.AdminDashboardKey,
			cache.SponsorCampaignsKey(userID),
		)
	case models.UserRoleInfluencer:
		h.cache.Delete(c.Request.Context(), cache.InfluencerProfileKey(userID))
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *AdminHandler) moderateCampaign(c *gin.Context, action func(string) error, message string) {
	if err := action(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
