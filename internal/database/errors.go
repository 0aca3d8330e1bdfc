// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/logging"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// Constraint violations are caused by the request, so they wrap query.ErrBadInput.
var (
	ErrDuplicate        = fmt.Errorf("%w: duplicate", query.ErrBadInput)
	ErrInvalidReference = fmt.Errorf("%w: invalid reference", query.ErrBadInput)
	ErrConstraint       = fmt.Errorf("%w: constraint violation", query.ErrBadInput)
)

// Postgres SQLSTATE codes mapped to request errors.
const (
	sqlStateInvalidText   = "22P02"
	sqlStateNotNull       = "23502"
	sqlStateForeignKey    = "23503"
	sqlStateUnique        = "23505"
	sqlStateCheck         = "23514"
	sqlStateNumericRange  = "22003"
	sqlStateDatetimeField = "22008"
)

// NotFoundError reports that no row matched the given key.
type NotFoundError struct {
	Entity string
	Field  string
	Key    interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with %s: %v", e.Entity, e.Field, e.Key)
}

// Is makes errors.Is(err, ErrNotFound) succeed for any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// classifyError wraps constraint and input-conversion failures with the
// matching request error, keeping the driver error in the chain.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateUnique:
			return fmt.Errorf("%w: %w", ErrDuplicate, err)
		case sqlStateForeignKey:
			return fmt.Errorf("%w: %w", ErrInvalidReference, err)
		case sqlStateCheck, sqlStateNotNull, sqlStateInvalidText, sqlStateNumericRange, sqlStateDatetimeField:
			return fmt.Errorf("%w: %w", ErrConstraint, err)
		}
		return err
	}

	// DuckDB reports constraint failures as plain error text
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case strings.Contains(msg, "foreign key"):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case strings.Contains(msg, "constraint error"), strings.Contains(msg, "conversion error"):
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	return err
}

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
