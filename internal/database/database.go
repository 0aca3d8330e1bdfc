// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/jobly/internal/config"
	"github.com/tomtom215/jobly/internal/logging"
)

// DB bundles the configured executor with the record accessors built on it.
type DB struct {
	exec  Executor
	close func()

	Jobs      *JobStore
	Companies *CompanyStore
	Users     *UserStore
}

// New builds the accessors on exec. Close on the result is a no-op.
func New(exec Executor, queryTimeout time.Duration) *DB {
	return &DB{
		exec:      exec,
		close:     func() {},
		Jobs:      NewJobStore(exec, queryTimeout),
		Companies: NewCompanyStore(exec, queryTimeout),
		Users:     NewUserStore(exec, queryTimeout),
	}
}

// Open connects to the configured driver, prepares the schema when
// cfg.MigrateOnStart is set and returns the accessors.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	var (
		exec    Executor
		closeFn func()
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.MigrateOnStart {
			if err := Migrate(cfg.URL); err != nil {
				return nil, err
			}
		}
		pool, err := OpenPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		exec = NewPgExecutor(pool)
		closeFn = pool.Close

	case config.DriverDuckDB:
		conn, err := OpenDuckDB(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		if cfg.MigrateOnStart {
			if err := EnsureDuckDBSchema(ctx, conn); err != nil {
				closeQuietly(conn)
				return nil, err
			}
		}
		exec = NewSQLExecutor(conn)
		closeFn = func() { closeWithLog(conn, "duckdb") }

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if cfg.Breaker.Enabled {
		exec = NewBreakerExecutor(exec, cfg.Driver, cfg.Breaker)
	}

	db := New(exec, cfg.QueryTimeout)
	db.close = closeFn
	logging.Info().Str("driver", cfg.Driver).Bool("breaker", cfg.Breaker.Enabled).Msg("Database ready")
	return db, nil
}

// Ping runs a trivial statement through the executor.
func (db *DB) Ping(ctx context.Context) error {
	rows, err := db.exec.Query(ctx, "SELECT 1")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
	}
	return rows.Err()
}

// Close releases the underlying pool or connection.
func (db *DB) Close() {
	db.close()
}
