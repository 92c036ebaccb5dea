package routes

import (
	"github.com/gin-gonic/gin"

	"parksexplorer/internal/interfaces/http/handlers"
	"parksexplorer/internal/interfaces/http/middleware"
)

// ItineraryRouteConfig holds dependencies for itinerary routes.
type ItineraryRouteConfig struct {
	ItineraryHandler *handlers.ItineraryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// SetupItineraryRoutes configures itinerary routes. All of them are
// owner-scoped and require authentication.
func SetupItineraryRoutes(engine *gin.Engine, cfg *ItineraryRouteConfig) {
	itineraries := engine.Group("/itineraries", cfg.AuthMiddleware.RequireAuth())
	{
		itineraries.POST("", cfg.ItineraryHandler.Generate)
		itineraries.GET("/user", cfg.ItineraryHandler.ListUserItineraries)
		itineraries.PUT("/:id", cfg.ItineraryHandler.Update)
		itineraries.DELETE("/:id", cfg.ItineraryHandler.Delete)
		itineraries.GET("/:id/pdf", cfg.ItineraryHandler.DownloadPDF)
	}
}
