// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first through 'joho/godotenv' when present, so development setups do not
need to export variables by hand.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Fyyur web server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// Pool sizing. The statement timeout is set on every connection.
	DBMaxConns         int32         `env:"DB_MAX_CONNS"          envDefault:"10"`
	DBMinConns         int32         `env:"DB_MIN_CONNS"          envDefault:"2"`
	DBMaxConnLifetime  time.Duration `env:"DB_MAX_CONN_LIFETIME"  envDefault:"60m"`
	DBMaxConnIdleTime  time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	DBStatementTimeout time.Duration `env:"DB_STATEMENT_TIMEOUT"  envDefault:"30s"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value store for flash messages (Redis). When empty, flashes are kept
	// in process memory, which is only suitable for a single instance.
	RedisURL string `env:"REDIS_URL"`

	// SessionSecret signs CSRF tokens.
	SessionSecret string `env:"SESSION_SECRET,required,notEmpty"`

	// FlashTTL bounds how long an unread flash message survives.
	FlashTTL time.Duration `env:"FLASH_TTL" envDefault:"10m"`

	// CSRFTTL is the lifetime of a form token.
	CSRFTTL time.Duration `env:"CSRF_TTL" envDefault:"2h"`

	// TrustedProxies lists the CIDR blocks or addresses of reverse proxies
	// whose X-Real-IP and X-Forwarded-For headers are believed. Empty means
	// the socket peer is always the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// RecentListings is how many venues and artists the home page shows.
	RecentListings int `env:"RECENT_LISTINGS" envDefault:"10"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config].
func Load() (*Config, error) {

	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if len(cfg.SessionSecret) < 16 {
		return nil, fmt.Errorf("config: SESSION_SECRET must be at least 16 bytes")
	}

	return cfg, nil
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
