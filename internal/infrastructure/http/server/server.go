// Package server provides the HTTP server for the recipe API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	userapp "github.com/ladlehq/ladle/internal/application/user"
	"github.com/ladlehq/ladle/internal/infrastructure/config"
	"github.com/ladlehq/ladle/internal/infrastructure/http/handlers"
	"github.com/ladlehq/ladle/internal/infrastructure/http/middleware"
	"github.com/ladlehq/ladle/internal/ports/inbound"
	"github.com/ladlehq/ladle/pkg/healthcheck"
)

// Server represents the HTTP server
type Server struct {
	config        *config.Config
	logger        *zap.Logger
	router        *chi.Mux
	server        *http.Server
	recipeService inbound.RecipeService
	userService   *userapp.UserService
	health        *healthcheck.HealthCheck
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	recipeService inbound.RecipeService,
	userService *userapp.UserService,
	health *healthcheck.HealthCheck,
) *Server {
	s := &Server{
		config:        cfg,
		logger:        logger,
		recipeService: recipeService,
		userService:   userService,
		health:        health,
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(metrics.Handler())

	// Operational endpoints
	r.Get("/health", s.health.Handler())
	r.Get("/health/live", s.health.LivenessHandler())
	r.Get("/health/ready", s.health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures REST API routes
func (s *Server) setupAPIRoutes(r chi.Router) {
	recipes := handlers.NewRecipeHandlers(s.recipeService, s.logger)
	users := handlers.NewUserHandlers(s.userService, s.logger)

	// Public reads: anyone can view a recipe and preview it at a
	// different serving count.
	r.Get("/recipes/{id}", recipes.GetRecipe)
	r.Post("/recipes/{id}/scale", recipes.ScaleRecipe)

	// Writes and personal views require a verified bearer token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(s.config.Auth.JWTSecret, s.config.Auth.Issuer))

		r.Get("/recipes", recipes.ListRecipes)
		r.Post("/recipes", recipes.CreateRecipe)
		r.Put("/recipes/{id}", recipes.UpdateRecipe)
		r.Delete("/recipes/{id}", recipes.DeleteRecipe)
		r.Post("/recipes/{id}/rescale", recipes.RescaleRecipe)

		r.Post("/profile", users.RegisterProfile)
		r.Get("/profile", users.GetProfile)
		r.Put("/profile", users.UpdateProfile)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
