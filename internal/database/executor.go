// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tomtom215/jobly/internal/logging"
)

// Rows is a forward-only cursor over a query result. pgx.Rows satisfies it
// directly; *sql.Rows is adapted by SQLExecutor.
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
	Close()
}

// Executor runs a statement written with $1..$n placeholders and the
// positionally aligned arguments.
type Executor interface {
	Query(ctx context.Context, sql string, args ...interface{}) (Rows, error)
}

// TxExecutor is an Executor that can run several statements atomically.
// fn receives an Executor bound to the transaction. The transaction commits
// when fn returns nil and rolls back otherwise; fn's error is returned as is.
type TxExecutor interface {
	Executor
	InTx(ctx context.Context, fn func(tx Executor) error) error
}

// SQLExecutor runs statements through database/sql.
type SQLExecutor struct {
	db *sql.DB
}

// NewSQLExecutor wraps db.
func NewSQLExecutor(db *sql.DB) *SQLExecutor {
	return &SQLExecutor{db: db}
}

// Query implements Executor.
func (e *SQLExecutor) Query(ctx context.Context, stmt string, args ...interface{}) (Rows, error) {
	rows, err := e.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	closeQuietly(r.Rows)
}

// InTx implements TxExecutor.
func (e *SQLExecutor) InTx(ctx context.Context, fn func(tx Executor) error) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(sqlTxExecutor{tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logging.Ctx(ctx).Warn().Err(rbErr).Msg("Failed to roll back transaction")
		}
		return err
	}
	return tx.Commit()
}

type sqlTxExecutor struct {
	tx *sql.Tx
}

func (e sqlTxExecutor) Query(ctx context.Context, stmt string, args ...interface{}) (Rows, error) {
	rows, err := e.tx.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows}, nil
}
