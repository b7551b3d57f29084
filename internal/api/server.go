// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The API is split into two surfaces: /api/v1/admin for the CMS (everything
behind an admin JWT except the auth endpoints themselves) and /api/v1/gallery
for the anonymous public read model.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/soyounglim/gallerim/internal/catalog/artwork"
	"github.com/soyounglim/gallerim/internal/catalog/genre"
	"github.com/soyounglim/gallerim/internal/catalog/series"
	"github.com/soyounglim/gallerim/internal/platform/config"
	"github.com/soyounglim/gallerim/internal/platform/constants"
	"github.com/soyounglim/gallerim/internal/platform/middleware"
	"github.com/soyounglim/gallerim/internal/platform/sec"
	"github.com/soyounglim/gallerim/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles admin authentication (login, refresh, logout).
	Auth *auth.Handler

	// Artwork handles the fanart catalogue (admin CRUD + public gallery).
	Artwork *artwork.Handler

	// Genre manages game genres and their translations.
	Genre *genre.Handler

	// Series manages curated artwork series.
	Series *series.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {

		// Admin surface. Auth endpoints stay outside the role gate so that
		// login and refresh work without an access token.
		api.Route("/admin", func(admin chi.Router) {
			admin.Mount("/auth", h.Auth.Routes())

			admin.Group(func(protected chi.Router) {
				protected.Use(middleware.RequireRole(sec.RoleAdmin))
				h.Artwork.RegisterAdminRoutes(protected)
				h.Genre.RegisterAdminRoutes(protected)
				h.Series.RegisterAdminRoutes(protected)
			})
		})

		// Public gallery surface. Anonymous, localized via Accept-Language,
		// drafts are invisible here.
		api.Route("/gallery", func(gallery chi.Router) {
			h.Artwork.RegisterGalleryRoutes(gallery)
			h.Genre.RegisterGalleryRoutes(gallery)
			h.Series.RegisterGalleryRoutes(gallery)
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
