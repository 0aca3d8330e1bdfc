// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomtom215/jobly/internal/config"
	"github.com/tomtom215/jobly/internal/logging"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// OpenPostgres creates a pgx pool for cfg.URL and verifies it with a ping.
func OpenPostgres(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}

	connectCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		connectCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Str("host", poolCfg.ConnConfig.Host).
		Str("database", poolCfg.ConnConfig.Database).
		Int32("max_conns", poolCfg.MaxConns).
		Msg("Connected to Postgres")
	return pool, nil
}

// PgExecutor runs statements on a pgx pool.
type PgExecutor struct {
	pool *pgxpool.Pool
}

// NewPgExecutor wraps pool.
func NewPgExecutor(pool *pgxpool.Pool) *PgExecutor {
	return &PgExecutor{pool: pool}
}

// Query implements Executor.
func (e *PgExecutor) Query(ctx context.Context, stmt string, args ...interface{}) (Rows, error) {
	rows, err := e.pool.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// InTx implements TxExecutor.
func (e *PgExecutor) InTx(ctx context.Context, fn func(tx Executor) error) error {
	return pgx.BeginFunc(ctx, e.pool, func(tx pgx.Tx) error {
		return fn(pgTxExecutor{tx})
	})
}

type pgTxExecutor struct {
	tx pgx.Tx
}

func (e pgTxExecutor) Query(ctx context.Context, stmt string, args ...interface{}) (Rows, error) {
	rows, err := e.tx.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Migrate applies the embedded migrations to the database at databaseURL.
func Migrate(databaseURL string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logging.Warn().Err(err).Msg("Failed to close migration instance")
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logging.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migrations applied")
	return nil
}
