// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/logging"
	"github.com/tomtom215/jobly/internal/metrics"
)

// store holds what every record accessor needs: the executor, the table it
// owns (used for metrics and logs) and the per-statement timeout.
type store struct {
	exec    Executor
	table   string
	timeout time.Duration
}

// run executes stmt and calls scan once per returned row. It returns the number
// of rows read. A nil scan only counts rows.
func (s *store) run(ctx context.Context, op, stmt string, args []interface{}, scan func(Rows) error) (int, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	n, err := s.collect(ctx, stmt, args, scan)
	metrics.RecordDBQuery(op, s.table, time.Since(start), err)
	metrics.RecordRows(op, s.table, n)

	if err != nil {
		err = classifyError(err)
		logger := logging.Ctx(ctx)
		if errors.Is(err, query.ErrBadInput) {
			logger.Debug().Err(err).Str("table", s.table).Str("operation", op).Msg("Statement rejected by constraint")
		} else {
			logger.Error().Err(err).Str("table", s.table).Str("operation", op).Msg("Query failed")
		}
		return n, fmt.Errorf("%s %s: %w", op, s.table, err)
	}
	return n, nil
}

func (s *store) collect(ctx context.Context, stmt string, args []interface{}, scan func(Rows) error) (int, error) {
	rows, err := s.exec.Query(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		if scan != nil {
			if err := scan(rows); err != nil {
				return n, err
			}
		}
		n++
	}
	return n, rows.Err()
}

// inTx runs fn on a copy of the store bound to one transaction. Executors
// without transaction support run fn directly.
func (s *store) inTx(ctx context.Context, fn func(tx *store) error) error {
	txe, ok := s.exec.(TxExecutor)
	if !ok {
		return fn(s)
	}

	var fnErr error
	err := txe.InTx(ctx, func(exec Executor) error {
		tx := *s
		tx.exec = exec
		fnErr = fn(&tx)
		return fnErr
	})
	if err != nil && fnErr == nil {
		logging.Ctx(ctx).Error().Err(err).Str("table", s.table).Msg("Transaction failed")
		return fmt.Errorf("transaction %s: %w", s.table, err)
	}
	return err
}

// notFound builds the NotFoundError for a statement that matched no row.
func (s *store) notFound(ctx context.Context, entity, field string, key interface{}) error {
	metrics.RecordNotFound(s.table)
	logging.Ctx(ctx).Debug().Str("table", s.table).Interface(field, key).Msg("No matching row")
	return &NotFoundError{Entity: entity, Field: field, Key: key}
}

// rejectBadInput logs a builder error and returns it unchanged.
func (s *store) rejectBadInput(ctx context.Context, op string, err error) error {
	logging.Ctx(ctx).Debug().Err(err).Str("table", s.table).Str("operation", op).Msg("Rejected statement input")
	return err
}

// nullable turns a nil pointer into an untyped nil and dereferences the rest.
func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
