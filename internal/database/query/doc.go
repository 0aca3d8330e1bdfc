// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

// Package query composes the dynamic parts of Jobly's SQL statements.
//
// It never talks to a database. Its functions turn in-memory requests into
// SQL fragments and a positionally aligned list of bind values using the
// PostgreSQL placeholder dialect ($1, $2, ...).
//
// # Overview
//
// Two builders cover the dynamic statements issued by the record stores in
// internal/database:
//
//   - PartialUpdate: maps an ordered FieldMap onto `"column"=$n` SET
//     assignments, translating logical names through an Aliases table.
//   - ComposeFilters: turns an optional FilterBag into WHERE predicates
//     (substring match, lower bound, positive flag, upper bound).
//
// Both return a Clause, an immutable pairing of fragments and values:
//
//	fields := query.NewFieldMap(
//	    query.Field{Name: "firstName", Value: "Aliya"},
//	    query.Field{Name: "age", Value: 47},
//	)
//	set, err := query.PartialUpdate(fields, query.Aliases{"age": "age1"})
//	// set.Join(", ") == `"firstName"=$1, "age1"=$2`
//	// set.Values()   == ["Aliya", 47]
//
//	where := query.ComposeFilters(query.FilterBag{
//	    Substring: query.String("eng"),
//	    Min:       query.Int(50000),
//	    Positive:  query.Bool(true),
//	}, query.FilterColumns{Substring: "title", Min: "salary", Positive: "equity"})
//	// where.Fragments() == ["title ILIKE $1", "salary >= $2", "equity > 0"]
//	// where.Values()    == ["%eng%", 50000]
//
// # Placeholder Numbering
//
// Every Clause numbers its placeholders from $1. A statement that needs a
// trailing fixed parameter takes its index from Clause.Next after the
// builder has run:
//
//	sql := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = %s`,
//	    set.Join(", "), query.Placeholder(set.Next()))
//	rows, err := exec.Query(ctx, sql, set.Args(id)...)
//
// Update and filtered search are never combined in one statement, so the
// builders do not renumber each other's output. Code that merges two
// Clauses into one statement must renumber the second one itself.
//
// # SQL Injection Prevention
//
// Values are never interpolated into SQL text. Column names come from the
// calling store (never from request input directly) and are double-quoted
// by PartialUpdate, with embedded quotes doubled.
//
// # Thread Safety
//
// PartialUpdate and ComposeFilters are pure and safe for concurrent use.
// A Clause is immutable once built. WhereBuilder and FieldMap instances are
// not thread-safe; build one per request.
package query
