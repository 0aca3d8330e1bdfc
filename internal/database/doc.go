// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

// Package database provides the record accessors for jobs, companies and users.
//
// # Overview
//
// Each accessor assembles its base statement, asks the query package for the
// variable part (a SET list or a WHERE predicate), appends any trailing fixed
// parameters with numbers taken from Clause.Next, and runs the result on an
// Executor. Statements that match no row return a *NotFoundError, which
// errors.Is reports as ErrNotFound.
//
// # Executors
//
// The Executor interface takes SQL with $1..$n placeholders:
//   - PgExecutor: pgx/v5 connection pool (production driver)
//   - SQLExecutor: database/sql, used with the embedded DuckDB driver
//   - BreakerExecutor: gobreaker circuit breaker around either of the above
//
// Postgres schemas come from the embedded migrations directory and are applied
// with golang-migrate. DuckDB databases are bootstrapped by EnsureDuckDBSchema.
//
// # Errors
//
//   - query.ErrBadInput: empty update data, constraint violations and values the
//     database cannot convert (ErrDuplicate, ErrInvalidReference, ErrConstraint)
//   - ErrNotFound: no row matched the key
//   - anything else is a database fault and is logged at error level
//
// # Usage
//
//	db, err := database.Open(ctx, &cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	var fields query.FieldMap
//	fields.Set("title", "Senior Engineer")
//	job, err := db.Jobs.Update(ctx, 7, fields)
//	// UPDATE jobs SET "title"=$1 WHERE id = $2 RETURNING ...
package database
