// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/jobly/internal/logging"
)

// duckDBSchema mirrors the Postgres migrations. DuckDB has no SERIAL and no
// cascading foreign keys, so ids come from a sequence and CompanyStore.Remove
// deletes a company's jobs itself.
var duckDBSchema = []string{
	`CREATE SEQUENCE IF NOT EXISTS jobs_id_seq START 1`,
	`CREATE TABLE IF NOT EXISTS companies (
		handle VARCHAR PRIMARY KEY CHECK (handle = lower(handle) AND length(handle) <= 25),
		name VARCHAR UNIQUE NOT NULL,
		num_employees INTEGER CHECK (num_employees >= 0),
		description VARCHAR NOT NULL,
		logo_url VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id INTEGER PRIMARY KEY DEFAULT nextval('jobs_id_seq'),
		title VARCHAR NOT NULL,
		salary INTEGER CHECK (salary >= 0),
		equity DOUBLE CHECK (equity <= 1.0),
		company_handle VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		username VARCHAR PRIMARY KEY CHECK (length(username) <= 25),
		password VARCHAR NOT NULL,
		first_name VARCHAR NOT NULL,
		last_name VARCHAR NOT NULL,
		email VARCHAR NOT NULL CHECK (strpos(email, '@') > 1),
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

// OpenDuckDB opens the DuckDB database at path. An empty path opens an
// in-memory database.
func OpenDuckDB(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	// Extension autoloading can hang in restricted networks and none are needed
	connStr := path + "?autoinstall_known_extensions=false&autoload_known_extensions=false"
	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().Str("path", path).Msg("Opened DuckDB database")
	return conn, nil
}

// EnsureDuckDBSchema creates the tables if they do not exist.
func EnsureDuckDBSchema(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range duckDBSchema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
