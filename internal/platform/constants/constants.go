// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and sender tracking TTLs.
  - Search: display bounds shared by the formatter and the transport adapter.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "moviq-api"
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
	// DefaultRateLimitRPS is the requests per second allowed per client.
	DefaultRateLimitRPS = 30.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 60

	// RateLimitCleanupInterval is how often old client entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Transport Headers

const (
	// HeaderXRequestID carries the correlation ID for log tracing.
	HeaderXRequestID = "X-Request-ID"

	// HeaderXSenderID carries the externally assigned numeric user identity,
	// set by the bot transport adapter on every forwarded interaction.
	HeaderXSenderID = "X-Sender-ID"

	// HeaderXSenderName carries the sender's display name, if the transport knows it.
	HeaderXSenderName = "X-Sender-Name"

	// HeaderXSenderUsername carries the sender's handle, if the transport knows it.
	HeaderXSenderUsername = "X-Sender-Username"

	// HeaderXRealIP and HeaderXForwardedFor are the proxy-provided client addresses.
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldError  = "error"
	FieldCode   = "code"
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Search & Display

const (
	// LabelTitleMaxRunes is the display truncation bound for result labels.
	LabelTitleMaxRunes = 50

	// TrendingTopCount is how many trending keywords the stats endpoint returns.
	TrendingTopCount = 10
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
	SchemaUsers   = "users"
)

// # Redis Keys (Cache Taxonomy)

const (
	// RedisKeyTrending is the sorted set of search keywords scored by frequency.
	RedisKeyTrending = "search:trending"

	// RedisKeyCatalogKeys caches the distinct normalized-key list for the fuzzy stage.
	RedisKeyCatalogKeys = "search:catalog_keys"

	// CatalogKeysTTL is how long the cached key list stays fresh. New ingests
	// become fuzzy-matchable after at most this delay.
	CatalogKeysTTL = 60 * time.Second
)

// # User Languages

// SupportedLanguages are the selectable user language preferences.
var SupportedLanguages = []string{"bn", "en", "hi"}
