package routes

import (
	"net/http"

	"studio_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route under /api. Each handler owns its
// own public and admin subtrees.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		api.GET("/health", healthCheck)

		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.CastingHandler.RegisterRoutes(api)
		appHandlers.SponsorHandler.RegisterRoutes(api)
		appHandlers.MovieHandler.RegisterRoutes(api)
		appHandlers.SettingsHandler.RegisterRoutes(api)

		if appHandlers.FileHandler != nil {
			appHandlers.FileHandler.RegisterRoutes(api)
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
