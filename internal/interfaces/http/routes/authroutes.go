package routes

import (
	"github.com/gin-gonic/gin"

	"parksexplorer/internal/interfaces/http/handlers"
	"parksexplorer/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/signup", cfg.AuthHandler.SignUp)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
		auth.GET("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.GetProfile)
	}
}
