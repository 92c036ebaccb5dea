package routes

import (
	"github.com/gin-gonic/gin"

	"parksexplorer/internal/interfaces/http/handlers"
)

// ParkRouteConfig holds dependencies for park routes.
type ParkRouteConfig struct {
	ParkHandler *handlers.ParkHandler
}

// SetupParkRoutes configures park catalog routes. Specific routes are
// registered before the :park_id parameter route so "search" and "parkcode"
// are never captured as IDs.
func SetupParkRoutes(engine *gin.Engine, cfg *ParkRouteConfig) {
	parks := engine.Group("/parks")
	{
		parks.GET("", cfg.ParkHandler.ListParks)
		parks.GET("/search", cfg.ParkHandler.SearchParks)
		parks.GET("/parkcode/:parkcode", cfg.ParkHandler.GetParkByCode)
		parks.GET("/:park_id", cfg.ParkHandler.GetPark)
		parks.GET("/:park_id/nps", cfg.ParkHandler.GetNPSDetails)
		parks.GET("/:park_id/description", cfg.ParkHandler.GetDescription)
		parks.GET("/:park_id/activities", cfg.ParkHandler.GetActivities)
	}
}
