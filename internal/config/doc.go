// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

/*
Package config loads Jobly's configuration with Koanf v2.

Sources, lowest to highest priority:

 1. Built-in defaults (defaultConfig)
 2. YAML file: config.yaml, config.yml, /etc/jobly/config.yaml, or CONFIG_PATH
 3. Environment variables

Environment Variables:

  - DATABASE_DRIVER: postgres (default) or duckdb
  - DATABASE_URL: Postgres connection URL
  - DUCKDB_PATH: DuckDB database file (empty = in-memory)
  - DB_MAX_CONNS, DB_MIN_CONNS: pgxpool sizing
  - DB_QUERY_TIMEOUT: per-statement deadline (e.g. "10s")
  - DB_MIGRATE_ON_START: apply migrations at startup (default true)
  - DB_BREAKER_*: executor circuit breaker tuning
  - DB_HEALTH_CHECK_INTERVAL: background ping interval (default "30s")
  - HTTP_HOST, HTTP_PORT (or PORT): listen address (default 0.0.0.0:3001)
  - CORS_ORIGINS: comma-separated allowed origins
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Example config.yaml:

	database:
	  driver: postgres
	  url: postgres://jobly:secret@db:5432/jobly?sslmode=disable
	server:
	  port: 3001
	logging:
	  level: debug
	  format: console
*/
package config
