// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package query

// FilterBag holds the optional search filters understood by ComposeFilters.
// A nil slot means the filter is absent.
//
// Slots are always emitted in this order:
//
//  1. Substring: case-insensitive substring match (ignored when empty)
//  2. Min: inclusive lower bound; zero is a real bound, not "absent"
//  3. Positive: when exactly true, requires the column to be > 0
//  4. Max: inclusive upper bound
//
// Positive set to false behaves exactly like an absent flag. A search cannot
// ask for "column must be zero" through this slot.
type FilterBag struct {
	Substring *string
	Min       *int
	Positive  *bool
	Max       *int
}

// FilterColumns names the column each FilterBag slot applies to.
// A slot whose column is empty is not supported by the entity and is skipped.
type FilterColumns struct {
	Substring string
	Min       string
	Positive  string
	Max       string
}

// ComposeFilters builds the WHERE predicates for bag.
//
// The result numbers its placeholders from $1 and is meant to be joined with
// " AND " (see Clause.Where). An empty bag yields an empty Clause.
// ComposeFilters never fails.
func ComposeFilters(bag FilterBag, cols FilterColumns) Clause {
	wb := NewWhereBuilder()

	if bag.Substring != nil && *bag.Substring != "" && cols.Substring != "" {
		wb.AddContains(cols.Substring, *bag.Substring)
	}

	if bag.Min != nil && cols.Min != "" {
		wb.AddComparison(cols.Min, ">=", *bag.Min)
	}

	if bag.Positive != nil && *bag.Positive && cols.Positive != "" {
		wb.AddConstant(cols.Positive + " > 0")
	}

	if bag.Max != nil && cols.Max != "" {
		wb.AddComparison(cols.Max, "<=", *bag.Max)
	}

	return wb.Build()
}

// String returns a pointer to s, for populating FilterBag literals.
func String(s string) *string { return &s }

// Int returns a pointer to n.
func Int(n int) *int { return &n }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
