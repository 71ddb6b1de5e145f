// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/fyyur are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/choice"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/config"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/metrics"
	"github.com/taibuivan/fyyur/internal/platform/middleware"
	"github.com/taibuivan/fyyur/internal/platform/render"
	"github.com/taibuivan/fyyur/internal/platform/sec"
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
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler; 503 when a dependency is down.
	Readiness http.HandlerFunc

	Home   *HomeHandler
	Venue  *venue.Handler
	Artist *artist.Handler
	Show   *show.Handler
}

// Platform carries the shared infrastructure the middleware chain needs.
type Platform struct {
	Renderer *render.Renderer
	CSRF     *sec.CSRFService
	Metrics  *metrics.Metrics
	// Proxies may be nil: forwarding headers are then ignored.
	Proxies  *middleware.ProxyTrust
}

// NewRenderer parses the page templates with the form choice helpers.
func NewRenderer(flashes flash.Store) (*render.Renderer, error) {
	return render.New(flashes, template.FuncMap{
		"states": choice.StateList,
		"genres": choice.GenreList,
	})
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, platform Platform, h Handlers) *Server {
	r := chi.NewRouter()
	renderer := platform.Renderer

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log, platform.Proxies))
	r.Use(middleware.Metrics(platform.Metrics))
	r.Use(middleware.PanicRecovery(renderer.Error))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst, platform.Proxies, renderer.Error))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Handle("/metrics", platform.Metrics.Handler())

	// # Pages
	// Everything a browser visits carries a session and is CSRF-checked.
	r.Group(func(pages chi.Router) {
		pages.Use(middleware.Session(cfg.IsProduction()))
		pages.Use(middleware.CSRF(platform.CSRF, renderer.Error))

		// Sets the root handler; the mounted sub-routers register their own.
		pages.NotFound(renderer.NotFound)
		pages.Method(http.MethodGet, "/", h.Home)
		pages.Route("/venues", h.Venue.RegisterRoutes)
		pages.Route("/artists", h.Artist.RegisterRoutes)
		pages.Route("/shows", h.Show.RegisterRoutes)
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

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// Run serves until ctx is cancelled, then shuts down gracefully, waiting up
// to [constants.ShutdownTimeout] for in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		s.log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
