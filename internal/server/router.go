// Package server wires handlers and middleware into the HTTP server
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/nextlearn/catalog/internal/config"
	"github.com/nextlearn/catalog/internal/handlers"
	"github.com/nextlearn/catalog/internal/middleware"
	"github.com/nextlearn/catalog/internal/models"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// NewRouter builds the router serving the JSON API, the site pages and the API docs
func NewRouter(cfg *config.Config, svc handlers.CoursesService, features []models.Feature, logger *zap.Logger) (*chi.Mux, error) {
	coursesHandler := handlers.NewCoursesHandler(svc, logger)
	healthHandler := handlers.NewHealthHandler(len(svc.Courses()), logger)
	pagesHandler, err := handlers.NewPagesHandler(svc, features, cfg.Site.BaseURL, cfg.Site.SearchDebounce, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pages handler: %w", err)
	}

	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.RecoveryMiddleware(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(cfg.Site.BaseURL+"/swagger/doc.json"),
	))

	healthHandler.RegisterRoutes(r)
	coursesHandler.RegisterRoutes(r)
	pagesHandler.RegisterRoutes(r)
	r.NotFound(pagesHandler.NotFound)

	return r, nil
}

// NewServer creates the HTTP server listening on the configured port
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
