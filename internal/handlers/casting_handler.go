package handlers

import (
	"net/http"

	"studio_backend/internal/middleware"
	"studio_backend/internal/models"
	"studio_backend/internal/services"
	"studio_backend/internal/services/dto"
	"studio_backend/internal/validator"
	"studio_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CastingHandler struct {
	*BaseHandler
	intakeService     services.IntakeService
	castingService    services.CastingService
	evaluationService services.EvaluationService
}

func NewCastingHandler(base *BaseHandler, intakeService services.IntakeService, castingService services.CastingService, evaluationService services.EvaluationService) *CastingHandler {
	return &CastingHandler{
		BaseHandler:       base,
		intakeService:     intakeService,
		castingService:    castingService,
		evaluationService: evaluationService,
	}
}

func (h *CastingHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public route
	r.POST("/casting/submit", h.SubmitCasting)

	// Admin routes
	admin := r.Group("/admin/applications")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleEditor))
	{
		admin.GET("", h.ListApplications)
		admin.GET("/:id", h.GetApplication)
		admin.PUT("/:id/status", h.UpdateApplicationStatus)
		admin.POST("/:id/evaluate", h.EvaluateApplication)
	}
}

// SubmitCasting accepts the public multipart casting form: text fields plus
// headshots[] and voiceSamples[] file parts.
func (h *CastingHandler) SubmitCasting(c *gin.Context) {
	var req dto.SubmitCastingRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data: "+err.Error()))
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart body: "+err.Error()))
		return
	}
	headshots := form.File["headshots"]
	voiceSamples := form.File["voiceSamples"]

	db := h.GetDB(c)
	if _, err := h.intakeService.SubmitCasting(c.Request.Context(), db, &req, headshots, voiceSamples); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CastingHandler) ListApplications(c *gin.Context) {
	var req dto.ListApplicationsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)
	apps, total, err := h.castingService.ListApplications(db, req.Status, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        total,
		"page":         page,
		"pageSize":     pageSize,
	})
}

func (h *CastingHandler) GetApplication(c *gin.Context) {
	db := h.GetDB(c)
	app, err := h.castingService.GetApplication(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *CastingHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	app, err := h.castingService.UpdateApplicationStatus(c.Request.Context(), db, c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// EvaluateApplication re-runs the bio scorer on demand instead of waiting
// for the background sweep.
func (h *CastingHandler) EvaluateApplication(c *gin.Context) {
	db := h.GetDB(c)
	app, err := h.evaluationService.EvaluateApplication(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
