// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package query

import "fmt"

// WhereBuilder accumulates WHERE predicates and numbers their placeholders.
//
// Predicates and arguments are appended in lockstep; the builder is the only
// place that tracks the running placeholder index. Build hands out an
// immutable Clause so the accumulating state never escapes.
//
// Example usage:
//
//	wb := query.NewWhereBuilder()
//	wb.AddContains("name", "net")
//	wb.AddComparison("num_employees", ">=", 10)
//	clause := wb.Build()
//	// name ILIKE $1 AND num_employees >= $2
type WhereBuilder struct {
	clauses []string
	args    []interface{}
}

// NewWhereBuilder creates a new WhereBuilder instance numbering from $1.
func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{
		clauses: []string{},
		args:    []interface{}{},
	}
}

// AddComparison adds "<column> <op> $n" bound to value.
func (wb *WhereBuilder) AddComparison(column, op string, value interface{}) *WhereBuilder {
	wb.args = append(wb.args, value)
	wb.clauses = append(wb.clauses, fmt.Sprintf("%s %s %s", column, op, Placeholder(len(wb.args))))
	return wb
}

// AddContains adds a case-insensitive substring match on column.
// The % wrapping is applied here; callers pass the raw search text.
func (wb *WhereBuilder) AddContains(column, text string) *WhereBuilder {
	return wb.AddComparison(column, "ILIKE", "%"+text+"%")
}

// AddConstant adds a predicate that takes no placeholder, e.g. "equity > 0".
func (wb *WhereBuilder) AddConstant(predicate string) *WhereBuilder {
	wb.clauses = append(wb.clauses, predicate)
	return wb
}

// Build returns the predicates and their arguments as a Clause.
// Later calls to the builder do not affect a Clause already returned.
func (wb *WhereBuilder) Build() Clause {
	c := Clause{
		fragments: make([]string, len(wb.clauses)),
		values:    make([]interface{}, len(wb.args)),
	}
	copy(c.fragments, wb.clauses)
	copy(c.values, wb.args)
	return c
}
