// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// Startup modes of the database connection bootstrapper.
const (
	// StartupModeDegrade starts serving immediately and keeps connecting in
	// the background. Database-backed routes answer 503 until connected.
	StartupModeDegrade = "degrade"

	// StartupModeFailFast aborts process start when the initial connection
	// attempts are exhausted.
	StartupModeFailFast = "fail-fast"
)

// Rate limit store kinds.
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// StructuredConfig is the top-level configuration container for the
// fitness-api gateway. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level descriptive settings exposed by the
	// informational endpoints.
	App App `envPrefix:"APP_"`

	// Server holds the public listener settings. Its variables carry no
	// prefix so that PORT keeps working as in every PaaS environment.
	Server Server

	// Admin holds the optional operational listener (metrics and probes).
	Admin Admin `envPrefix:"ADMIN_"`

	// Storage holds the database connection settings.
	Storage Storage

	// RateLimit holds the fixed-window rate limiter settings.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// CORS holds the cross-origin policy.
	CORS CORS `envPrefix:"CORS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds descriptive values returned by GET / and GET /api.
type App struct {
	// Version is the API version string (e.g. "1.0.0").
	// Env: APP_VERSION
	Version string `env:"VERSION" validate:"required"`

	// DocumentationURL is the link returned in the /api descriptor.
	// Env: APP_DOCUMENTATION_URL
	DocumentationURL string `env:"DOCUMENTATION_URL" validate:"required"`
}

// Server holds network, timeout and request-parsing settings for the public
// HTTP listener.
type Server struct {
	// Host is the interface to bind. Empty means all interfaces.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port to listen on.
	// Env: PORT
	Port int `env:"PORT" validate:"min=1,max=65535"`

	// TrustProxy makes the rate limiter key clients by X-Forwarded-For /
	// X-Real-IP instead of the peer address.
	// Env: TRUST_PROXY
	TrustProxy bool `env:"TRUST_PROXY"`

	// BodyLimit is the maximum accepted JSON body size in bytes.
	// Env: BODY_LIMIT
	BodyLimit int64 `env:"BODY_LIMIT" validate:"min=1"`

	// ReadTimeout, WriteTimeout and IdleTimeout are applied to http.Server.
	// Env: SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT, SERVER_IDLE_TIMEOUT
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" validate:"gt=0s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" validate:"gt=0s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" validate:"gt=0s"`

	// ShutdownTimeout bounds graceful shutdown of all listeners.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" validate:"gt=0s"`
}

// Address returns the listen address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Admin holds the operational listener settings.
type Admin struct {
	// Address is the "host:port" of the admin listener. Empty disables it.
	// Env: ADMIN_ADDRESS
	Address string `env:"ADDRESS"`
}

// Storage groups the configuration for persistence backends.
type Storage struct {
	// DB holds the database connection settings.
	DB DB
}

// DB holds connection settings for the single process-wide database
// connection.
type DB struct {
	// URI is the connection URI. The scheme selects the driver:
	// mongodb://, mongodb+srv://, postgres:// or postgresql://.
	// Env: DATABASE_URI
	URI string `env:"DATABASE_URI" validate:"required_if=StartupMode fail-fast"`

	// LegacyURI is read from MONGODB_URI and used when URI is empty.
	LegacyURI string `env:"MONGODB_URI"`

	// MaxPoolSize bounds the number of open connections.
	// Env: STORAGE_DB_MAX_POOL_SIZE
	MaxPoolSize int `env:"STORAGE_DB_MAX_POOL_SIZE" validate:"min=1"`

	// ConnectTimeout bounds a single connect-and-ping attempt.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"STORAGE_DB_CONNECT_TIMEOUT" validate:"gt=0s"`

	// StartupMode is either "degrade" or "fail-fast".
	// Env: STORAGE_DB_STARTUP_MODE
	StartupMode string `env:"STORAGE_DB_STARTUP_MODE" validate:"oneof=degrade fail-fast"`

	// RetryBase and RetryMax shape the exponential reconnect backoff.
	// Env: STORAGE_DB_RETRY_BASE, STORAGE_DB_RETRY_MAX
	RetryBase time.Duration `env:"STORAGE_DB_RETRY_BASE" validate:"gt=0s"`
	RetryMax  time.Duration `env:"STORAGE_DB_RETRY_MAX" validate:"gtefield=RetryBase"`

	// StartupTimeout bounds the initial retry series in fail-fast mode.
	// Env: STORAGE_DB_STARTUP_TIMEOUT
	StartupTimeout time.Duration `env:"STORAGE_DB_STARTUP_TIMEOUT" validate:"gt=0s"`

	// PingInterval is the period of the connection monitor.
	// Env: STORAGE_DB_PING_INTERVAL
	PingInterval time.Duration `env:"STORAGE_DB_PING_INTERVAL" validate:"gt=0s"`
}

// RateLimit holds the fixed-window limiter settings.
type RateLimit struct {
	// Window is the fixed window duration.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW" validate:"gt=0s"`

	// Max is the per-window request ceiling for one client identity.
	// Env: RATE_LIMIT_MAX
	Max int `env:"MAX" validate:"min=1"`

	// Store selects the window storage: "memory" or "redis".
	// Env: RATE_LIMIT_STORE
	Store string `env:"STORE" validate:"oneof=memory redis"`

	// RedisURL is the redis:// URL used by the redis store.
	// Env: RATE_LIMIT_REDIS_URL
	RedisURL string `env:"REDIS_URL" validate:"required_if=Store redis"`

	// KeyPrefix namespaces the redis keys.
	// Env: RATE_LIMIT_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`

	// CleanupInterval is the period of the memory store janitor.
	// Env: RATE_LIMIT_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" validate:"gt=0s"`
}

// CORS holds the cross-origin policy.
type CORS struct {
	// Env: CORS_ALLOWED_ORIGINS (comma separated, "*" allows every origin)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," validate:"min=1,dive,required"`
	// Env: CORS_ALLOWED_METHODS
	AllowedMethods []string `env:"ALLOWED_METHODS" envSeparator:"," validate:"min=1"`
	// Env: CORS_ALLOWED_HEADERS
	AllowedHeaders []string `env:"ALLOWED_HEADERS" envSeparator:","`
	// Env: CORS_EXPOSED_HEADERS
	ExposedHeaders []string `env:"EXPOSED_HEADERS" envSeparator:","`
	// Env: CORS_ALLOW_CREDENTIALS
	AllowCredentials bool `env:"ALLOW_CREDENTIALS"`
	// MaxAge is the preflight cache duration in seconds.
	// Env: CORS_MAX_AGE
	MaxAge int `env:"MAX_AGE" validate:"min=0"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded
//     first without overriding already exported variables)
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
