// Package server provides the HTTP server wiring for the REST API
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/net/http2"

	"github.com/kecarajocomer/v3/internal/infrastructure/config"
	"github.com/kecarajocomer/v3/internal/infrastructure/http/handlers"
	"github.com/kecarajocomer/v3/internal/infrastructure/http/middleware"
	"github.com/kecarajocomer/v3/internal/infrastructure/monitoring"
)

// Server wraps the HTTP server and its routes
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New assembles the router and server
func New(
	cfg *config.Config,
	logger *zap.Logger,
	metrics *monitoring.Metrics,
	shoppingHandler *handlers.ShoppingHandler,
	mealPlanHandler *handlers.MealPlanHandler,
	healthHandler *handlers.HealthHandler,
) (*Server, error) {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(metrics))
	router.Use(middleware.RateLimit(cfg.Server.RequestsPerSec, cfg.Server.BurstSize))

	router.Get("/health", healthHandler.Health)
	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth.JWTSecret, logger))
		r.Post("/shopping-list/generate", shoppingHandler.GenerateShoppingList)
		r.Post("/meal-plan/generate", mealPlanHandler.GenerateMealPlan)
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if err := http2.ConfigureServer(httpServer, &http2.Server{}); err != nil {
		return nil, fmt.Errorf("failed to configure http2: %w", err)
	}

	return &Server{
		httpServer: httpServer,
		logger:     logger.Named("http-server"),
	}, nil
}

// Start begins serving requests. It blocks until the listener fails or
// the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
