// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package query

import (
	"strconv"
	"strings"
)

// Clause is an immutable list of SQL fragments paired with their bind values.
//
// Values()[i] is bound to placeholder $i+1. Constant-shape fragments such as
// "equity > 0" take no placeholder and consume no value, so a Clause may hold
// more fragments than values.
type Clause struct {
	fragments []string
	values    []interface{}
}

// Fragments returns a copy of the clause fragments in emission order.
func (c Clause) Fragments() []string {
	out := make([]string, len(c.fragments))
	copy(out, c.fragments)
	return out
}

// Values returns a copy of the bind values in placeholder order.
func (c Clause) Values() []interface{} {
	out := make([]interface{}, len(c.values))
	copy(out, c.values)
	return out
}

// IsEmpty reports whether the clause has no fragments.
func (c Clause) IsEmpty() bool {
	return len(c.fragments) == 0
}

// Next returns the index of the first placeholder not used by the clause.
func (c Clause) Next() int {
	return len(c.values) + 1
}

// Join joins the fragments with sep: ", " for SET lists, " AND " for WHERE.
func (c Clause) Join(sep string) string {
	return strings.Join(c.fragments, sep)
}

// Where renders the clause as a WHERE suffix with a leading space.
// An empty clause renders as "" so that no bare WHERE keyword is emitted.
func (c Clause) Where() string {
	if c.IsEmpty() {
		return ""
	}
	return " WHERE " + c.Join(" AND ")
}

// Args returns the bind values followed by trailing, ready to pass to an
// executor. trailing values occupy placeholders Next(), Next()+1, ...
func (c Clause) Args(trailing ...interface{}) []interface{} {
	out := make([]interface{}, 0, len(c.values)+len(trailing))
	out = append(out, c.values...)
	return append(out, trailing...)
}

// Placeholder returns the PostgreSQL positional placeholder for index n (1-based).
func Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// QuoteIdentifier wraps name in double quotes, doubling any embedded quote.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
