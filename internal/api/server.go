// Package api provides the HTTP API server and handlers for the DramaSeed importer.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dramaseed/dramaseed-server/internal/mbcache"
	"github.com/dramaseed/dramaseed-server/internal/service"
	"github.com/dramaseed/dramaseed-server/internal/validation"
)

// Services groups the service dependencies of the HTTP handlers.
type Services struct {
	Sessions *service.SessionService
	Seeds    *service.SeedService
	Cache    *mbcache.Cache
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services  *Services
	router    *chi.Mux
	api       huma.API
	validator *validation.Validator
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services *Services, version string, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	// The review UI runs in the browser on the scraped sites' pages, so
	// every request arrives cross-origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig("DramaSeed API", version)
	api := humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s := &Server{
		services:  services,
		router:    router,
		api:       api,
		validator: validation.New(),
		logger:    logger,
	}

	s.registerHealthRoutes()
	s.registerSessionRoutes()
	s.registerCacheRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
