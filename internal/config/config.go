// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package config

import "time"

// Database drivers understood by DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverDuckDB   = "duckdb"
)

// Config holds all application configuration.
//
// Load it with Load(), which layers defaults, an optional YAML file and
// environment variables. Config is immutable after Load() and safe for
// concurrent read access.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig selects and tunes the query executor.
type DatabaseConfig struct {
	Driver         string        `koanf:"driver"`           // "postgres" (default) or "duckdb"
	URL            string        `koanf:"url"`              // Postgres connection URL
	Path           string        `koanf:"path"`             // DuckDB file; empty for in-memory
	MaxConns       int32         `koanf:"max_conns"`        // pgxpool MaxConns (0 = pgx default)
	MinConns       int32         `koanf:"min_conns"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	QueryTimeout   time.Duration `koanf:"query_timeout"`    // Per-statement deadline (0 = none)
	MigrateOnStart bool          `koanf:"migrate_on_start"` // Apply embedded migrations / DuckDB schema at startup

	HealthCheckInterval time.Duration `koanf:"health_check_interval"` // Background ping period

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker wrapped around the executor.
type BreakerConfig struct {
	Enabled             bool          `koanf:"enabled"`
	ConsecutiveFailures uint32        `koanf:"consecutive_failures"` // Trip after this many consecutive failures
	OpenTimeout         time.Duration `koanf:"open_timeout"`         // Time spent open before probing again
	HalfOpenRequests    uint32        `koanf:"half_open_requests"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings passed to logging.Init.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from, in increasing priority:
//  1. Built-in defaults
//  2. Config file (config.yaml if present, or the CONFIG_PATH env var)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}
