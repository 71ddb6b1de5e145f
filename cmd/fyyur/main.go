// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command fyyur is the entry point for the Fyyur web server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Connect to Redis for flash messages, or fall back to process memory.
//  6. Wire services, handlers and the middleware platform.
//  7. Serve until SIGINT/SIGTERM, then shut down gracefully.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/fyyur/internal/api"
	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/config"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/metrics"
	"github.com/taibuivan/fyyur/internal/platform/middleware"
	"github.com/taibuivan/fyyur/internal/platform/migration"
	pgstore "github.com/taibuivan/fyyur/internal/platform/postgres"
	redisstore "github.com/taibuivan/fyyur/internal/platform/redis"
	"github.com/taibuivan/fyyur/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.PoolOptions{
		MaxConns:         cfg.DBMaxConns,
		MinConns:         cfg.DBMinConns,
		MaxConnLifetime:  cfg.DBMaxConnLifetime,
		MaxConnIdleTime:  cfg.DBMaxConnIdleTime,
		StatementTimeout: cfg.DBStatementTimeout,
	}, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Flash store ────────────────────────────────────────────────────
	health := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
	}

	var flashes flash.Store
	if cfg.RedisURL == "" {
		log.Warn("flash_store_in_memory", slog.String("reason", "REDIS_URL not set"))
		flashes = flash.NewMemoryStore(cfg.FlashTTL)
	} else {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		flashes = flash.NewRedisStore(rdb, cfg.FlashTTL)
		health.CheckFlashStore = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 6. Platform ───────────────────────────────────────────────────────
	csrf, err := sec.NewCSRFService(cfg.SessionSecret, constants.CSRFIssuer, cfg.CSRFTTL)
	must(log, err, "initialize csrf service")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.New(registry)

	renderer, err := api.NewRenderer(flashes)
	must(log, err, "parse templates")

	proxies, err := middleware.NewProxyTrust(cfg.TrustedProxies)
	must(log, err, "parse trusted proxies")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	venueService := venue.NewService(venue.NewPostgresRepository(pool), collector, log)
	artistService := artist.NewService(artist.NewPostgresRepository(pool), collector, log)
	showService := show.NewService(show.NewPostgresRepository(pool), collector, log, time.Local)

	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Home:      api.NewHomeHandler(venueService, artistService, renderer, cfg.RecentListings),
		Venue:     venue.NewHandler(venueService, renderer),
		Artist:    artist.NewHandler(artistService, renderer),
		Show:      show.NewHandler(showService, renderer),
	}

	// ── 8. HTTP Server & Graceful Shutdown ────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	server := api.NewServer(ctx, cfg, log, api.Platform{
		Renderer: renderer,
		CSRF:     csrf,
		Metrics:  collector,
		Proxies:  proxies,
	}, handlers)

	if err := server.Run(ctx); err != nil {
		log.Error("server_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
}

func closeRedis(log *slog.Logger, client *goredis.Client) {
	log.Info("closing_redis_client")
	if err := client.Close(); err != nil {
		log.Error("redis_close_error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
