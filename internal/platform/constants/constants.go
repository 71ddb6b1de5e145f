// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Sessions: cookie, header and form field names.
  - Formats: the datetime layouts accepted and rendered by forms.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "fyyur"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderXCSRFToken    = "X-CSRF-Token"
)

// # Sessions

const (
	// SessionCookieName carries the opaque session id that keys flash messages.
	SessionCookieName = "fyyur_session"

	// SessionCookieMaxAge is the lifetime of the session cookie.
	SessionCookieMaxAge = 30 * 24 * time.Hour

	// CSRFFormField is the hidden form input that carries the CSRF token.
	CSRFFormField = "csrf_token"

	// CSRFIssuer is the 'iss' claim of CSRF tokens.
	CSRFIssuer = "fyyur.csrf"
)

// # Redis Prefixes

const (
	RedisPrefixFlash = "flash:"
)

// # Formats

const (
	// DateTimeLayout is the canonical start_time form format.
	DateTimeLayout = "2006-01-02 15:04:05"

	// DateTimeLocalLayout is what an HTML datetime-local input submits.
	DateTimeLocalLayout = "2006-01-02T15:04"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldSuccess = "success"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)
