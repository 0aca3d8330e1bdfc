// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/jobly/internal/config"
	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/logging"
	"github.com/tomtom215/jobly/internal/metrics"
)

// BreakerExecutor fails fast with gobreaker.ErrOpenState once the wrapped
// executor has failed cfg.ConsecutiveFailures times in a row. Canceled
// requests and errors caused by the request itself do not count as failures.
type BreakerExecutor struct {
	next Executor
	name string
	cb   *gobreaker.CircuitBreaker[Rows]
}

// NewBreakerExecutor wraps next with a circuit breaker named name.
func NewBreakerExecutor(next Executor, name string, cfg config.BreakerConfig) *BreakerExecutor {
	threshold := cfg.ConsecutiveFailures
	if threshold == 0 {
		threshold = 5
	}

	b := &BreakerExecutor{next: next, name: name}
	b.cb = gobreaker.NewCircuitBreaker[Rows](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenRequests,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordBreakerTransition(name, from, to)
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Database circuit breaker changed state")
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	return b
}

// Query implements Executor.
func (b *BreakerExecutor) Query(ctx context.Context, stmt string, args ...interface{}) (Rows, error) {
	rows, err := b.cb.Execute(func() (Rows, error) {
		return b.next.Query(ctx, stmt, args...)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	}
	return rows, err
}

// InTx implements TxExecutor when the wrapped executor does. Statements
// inside the transaction go through the same breaker.
func (b *BreakerExecutor) InTx(ctx context.Context, fn func(tx Executor) error) error {
	txe, ok := b.next.(TxExecutor)
	if !ok {
		return fn(b)
	}
	return txe.InTx(ctx, func(tx Executor) error {
		return fn(&BreakerExecutor{next: tx, name: b.name, cb: b.cb})
	})
}

// State reports the breaker's current state.
func (b *BreakerExecutor) State() gobreaker.State {
	return b.cb.State()
}

func isBreakerSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	return errors.Is(classifyError(err), query.ErrBadInput)
}
