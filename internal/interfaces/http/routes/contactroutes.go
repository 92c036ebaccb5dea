package routes

import (
	"github.com/gin-gonic/gin"

	"parksexplorer/internal/interfaces/http/handlers"
	"parksexplorer/internal/interfaces/http/middleware"
)

// ContactRouteConfig holds dependencies for contact routes.
type ContactRouteConfig struct {
	ContactHandler *handlers.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupContactRoutes configures the contact-form route. Submissions are
// attributed to the authenticated user.
func SetupContactRoutes(engine *gin.Engine, cfg *ContactRouteConfig) {
	engine.POST("/contact", cfg.AuthMiddleware.RequireAuth(), cfg.ContactHandler.Submit)
}
