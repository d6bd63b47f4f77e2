package handlers

import (
	"net/http"

	"studio_backend/internal/middleware"
	"studio_backend/internal/models"
	"studio_backend/internal/services"
	"studio_backend/internal/services/dto"
	"studio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SponsorHandler struct {
	*BaseHandler
	intakeService  services.IntakeService
	sponsorService services.SponsorService
}

func NewSponsorHandler(base *BaseHandler, intakeService services.IntakeService, sponsorService services.SponsorService) *SponsorHandler {
	return &SponsorHandler{
		BaseHandler:    base,
		intakeService:  intakeService,
		sponsorService: sponsorService,
	}
}

func (h *SponsorHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public route
	r.POST("/sponsor/submit", h.SubmitSponsor)

	// Admin routes
	admin := r.Group("/admin/sponsors")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleEditor))
	{
		admin.GET("", h.ListSponsors)
		admin.GET("/:id", h.GetSponsor)
		admin.POST("", h.CreateSponsor)
		admin.PUT("/:id", h.UpdateSponsor)
		admin.PUT("/:id/status", h.UpdateSponsorStatus)
	}

	adminOnly := r.Group("/admin/sponsors")
	adminOnly.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		adminOnly.DELETE("/:id", h.DeleteSponsor)
	}
}

// SubmitSponsor accepts the public sponsor-inquiry form. Bot submissions
// caught by the honeypot still get a success response.
func (h *SponsorHandler) SubmitSponsor(c *gin.Context) {
	var req dto.SubmitSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleServiceError(c, apperrors.New(apperrors.CodeValidationFailed, "sponsor", "Missing required fields", http.StatusBadRequest))
		return
	}

	db := h.GetDB(c)
	if _, err := h.intakeService.SubmitSponsor(c.Request.Context(), db, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SponsorHandler) ListSponsors(c *gin.Context) {
	var req dto.ListSponsorsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)
	sponsors, total, err := h.sponsorService.ListSponsors(db, req.Status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sponsors": sponsors,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func (h *SponsorHandler) GetSponsor(c *gin.Context) {
	db := h.GetDB(c)
	sponsor, err := h.sponsorService.GetSponsor(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sponsor)
}

func (h *SponsorHandler) CreateSponsor(c *gin.Context) {
	var req dto.CreateSponsorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	sponsor, err := h.sponsorService.CreateSponsor(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sponsor)
}

func (h *SponsorHandler) UpdateSponsor(c *gin.Context) {
	var req dto.UpdateSponsorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	sponsor, err := h.sponsorService.UpdateSponsor(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sponsor)
}

func (h *SponsorHandler) UpdateSponsorStatus(c *gin.Context) {
	var req dto.UpdateSponsorStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	sponsor, err := h.sponsorService.UpdateSponsorStatus(db, c.Param("id"), models.SponsorStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sponsor)
}

func (h *SponsorHandler) DeleteSponsor(c *gin.Context) {
	db := h.GetDB(c)
	if err := h.sponsorService.DeleteSponsor(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
