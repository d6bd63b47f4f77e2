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

type MovieHandler struct {
	*BaseHandler
	movieService services.MovieService
}

func NewMovieHandler(base *BaseHandler, movieService services.MovieService) *MovieHandler {
	return &MovieHandler{
		BaseHandler:  base,
		movieService: movieService,
	}
}

func (h *MovieHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes: published catalog only
	r.GET("/movies", h.ListPublishedMovies)
	r.GET("/movies/:id", h.GetPublishedMovie)

	// Admin routes
	admin := r.Group("/admin/movies")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleEditor))
	{
		admin.GET("", h.ListMovies)
		admin.GET("/:id", h.GetMovie)
		admin.POST("", h.CreateMovie)
		admin.PUT("/:id", h.UpdateMovie)
	}

	adminOnly := r.Group("/admin/movies")
	adminOnly.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		adminOnly.DELETE("/:id", h.DeleteMovie)
	}
}

func (h *MovieHandler) ListPublishedMovies(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	db := h.GetDB(c)
	movies, err := h.movieService.ListPublished(db, featuredOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

func (h *MovieHandler) GetPublishedMovie(c *gin.Context) {
	db := h.GetDB(c)
	movie, err := h.movieService.GetMovie(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if movie.Status != string(models.MovieStatusPublished) {
		h.HandleServiceError(c, apperrors.NewNotFoundError("movie", "Movie not found"))
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) ListMovies(c *gin.Context) {
	db := h.GetDB(c)
	movies, err := h.movieService.ListMovies(db, c.Query("status"), c.Query("featured") == "true")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	db := h.GetDB(c)
	movie, err := h.movieService.GetMovie(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req dto.CreateMovieRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	movie, err := h.movieService.CreateMovie(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	var req dto.UpdateMovieRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	movie, err := h.movieService.UpdateMovie(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	db := h.GetDB(c)
	if err := h.movieService.DeleteMovie(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
