// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The server speaks to the bot transport adapter, not to end users directly:
every identified request carries the X-Sender-ID headers the adapter forwards.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/devkabir/moviq/internal/admin"
	"github.com/devkabir/moviq/internal/catalog"
	"github.com/devkabir/moviq/internal/ledger"
	"github.com/devkabir/moviq/internal/platform/config"
	"github.com/devkabir/moviq/internal/platform/constants"
	"github.com/devkabir/moviq/internal/platform/middleware"
	"github.com/devkabir/moviq/internal/search"
	"github.com/devkabir/moviq/internal/users/profile"
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

	// Search handles the two-stage lookup endpoint.
	Search *search.Handler

	// Catalog handles item reads and admin-gated ingestion.
	Catalog *catalog.Handler

	// Ledger handles views, votes, and favorites.
	Ledger *ledger.Handler

	// Profile handles sender preferences and favorite listings.
	Profile *profile.Handler

	// Admin handles the operator stats report.
	Admin *admin.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Identify())
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		h.Search.RegisterRoutes(api)
		h.Catalog.RegisterRoutes(api)
		h.Ledger.RegisterRoutes(api)
		h.Profile.RegisterRoutes(api)

		// Privileged routes: channel-mirror ingestion and operator stats.
		api.Group(func(privileged chi.Router) {
			privileged.Use(middleware.RequireAdmin(cfg))
			h.Catalog.RegisterAdminRoutes(privileged)
			privileged.Route("/admin", func(adminRouter chi.Router) {
				h.Admin.RegisterRoutes(adminRouter)
			})
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
