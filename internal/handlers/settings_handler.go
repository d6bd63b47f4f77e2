package handlers

import (
	"net/http"

	"studio_backend/internal/middleware"
	"studio_backend/internal/models"
	"studio_backend/internal/services"
	"studio_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	*BaseHandler
	settingsService services.SettingsService
}

func NewSettingsHandler(base *BaseHandler, settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler:     base,
		settingsService: settingsService,
	}
}

func (h *SettingsHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public route: the site shell reads studio name, socials and donation link
	r.GET("/settings", h.GetPublicSettings)

	admin := r.Group("/admin/settings")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.GetSettings)
		admin.PUT("", h.UpdateSettings)
	}
}

// GetPublicSettings omits the internal notification address.
func (h *SettingsHandler) GetPublicSettings(c *gin.Context) {
	db := h.GetDB(c)
	settings, err := h.settingsService.GetSettings(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"studioName":   settings.StudioName,
		"contactEmail": settings.ContactEmail,
		"socialLinks":  settings.SocialLinks,
		"donationUrl":  settings.DonationURL,
	})
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	db := h.GetDB(c)
	settings, err := h.settingsService.GetSettings(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	settings, err := h.settingsService.UpdateSettings(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
