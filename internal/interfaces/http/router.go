// Package http wires repositories, external adapters, application services
// and handlers into a configured gin engine.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authapp "parksexplorer/internal/application/auth"
	contactapp "parksexplorer/internal/application/contact"
	itineraryapp "parksexplorer/internal/application/itinerary"
	parkapp "parksexplorer/internal/application/park"
	"parksexplorer/internal/infrastructure/config"
	"parksexplorer/internal/infrastructure/email"
	"parksexplorer/internal/infrastructure/identity"
	"parksexplorer/internal/infrastructure/nps"
	"parksexplorer/internal/infrastructure/openai"
	"parksexplorer/internal/infrastructure/pdf"
	"parksexplorer/internal/infrastructure/repository"
	"parksexplorer/internal/infrastructure/weather"
	"parksexplorer/internal/interfaces/http/handlers"
	"parksexplorer/internal/interfaces/http/middleware"
	"parksexplorer/internal/interfaces/http/routes"
	"parksexplorer/internal/shared/logger"
)

// Router holds the configured engine and the handlers behind it.
type Router struct {
	engine *gin.Engine

	healthHandler    *handlers.HealthHandler
	authHandler      *handlers.AuthHandler
	parkHandler      *handlers.ParkHandler
	itineraryHandler *handlers.ItineraryHandler
	contactHandler   *handlers.ContactHandler
	authMiddleware   *middleware.AuthMiddleware

	allowedOrigins []string
}

// NewRouter creates a new HTTP router with all dependencies. redisClient may
// be nil; the weather adapter then runs uncached.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	parkRepo := repository.NewParkRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)
	contactRepo := repository.NewContactRepository(db)

	identityClient := identity.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.APIKey, log.Named("identity"))
	npsClient := nps.NewHTTPClient(cfg.NPS.BaseURL, cfg.NPS.APIKey, log.Named("nps"))
	aiClient := openai.NewHTTPClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model, log.Named("openai"))

	var weatherService weather.Service = weather.NewHTTPClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, log.Named("weather"))
	if redisClient != nil {
		weatherService = weather.NewCachedService(weatherService, redisClient, log.Named("weather.cache"))
	}

	notifier := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		ContactTo:   cfg.Email.ContactTo,
	})

	renderer := pdf.NewRenderer()

	authService := authapp.NewService(identityClient, userRepo, log.Named("auth"))
	parkService := parkapp.NewService(parkRepo, npsClient, aiClient, log.Named("park"))
	itineraryService := itineraryapp.NewService(itineraryRepo, parkRepo, weatherService, aiClient, renderer, log.Named("itinerary"))
	contactService := contactapp.NewService(contactRepo, notifier, log.Named("contact"))

	return &Router{
		engine: engine,

		healthHandler:    handlers.NewHealthHandler(db),
		authHandler:      handlers.NewAuthHandler(authService),
		parkHandler:      handlers.NewParkHandler(parkService),
		itineraryHandler: handlers.NewItineraryHandler(itineraryService),
		contactHandler:   handlers.NewContactHandler(contactService),
		authMiddleware:   middleware.NewAuthMiddleware(cfg.Supabase.JWTSecret, log.Named("auth.middleware")),

		allowedOrigins: cfg.Server.AllowedOrigins,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/", r.healthHandler.Root)
	r.engine.GET("/health", r.healthHandler.Health)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupParkRoutes(r.engine, &routes.ParkRouteConfig{
		ParkHandler: r.parkHandler,
	})
	routes.SetupItineraryRoutes(r.engine, &routes.ItineraryRouteConfig{
		ItineraryHandler: r.itineraryHandler,
		AuthMiddleware:   r.authMiddleware,
	})
	routes.SetupContactRoutes(r.engine, &routes.ContactRouteConfig{
		ContactHandler: r.contactHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
