// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"
)

// recordedQuery is one call seen by fakeExecutor.
type recordedQuery struct {
	sql         string
	args        []interface{}
	hasDeadline bool
}

// fakeExecutor records every statement and replays canned results in call
// order. results[i] and errs[i] answer the i-th call.
type fakeExecutor struct {
	mu      sync.Mutex
	queries []recordedQuery
	results [][][]interface{}
	errs    []error
}

func (f *fakeExecutor) Query(ctx context.Context, sql string, args ...interface{}) (Rows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, hasDeadline := ctx.Deadline()
	f.queries = append(f.queries, recordedQuery{sql: sql, args: args, hasDeadline: hasDeadline})
	idx := len(f.queries) - 1

	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	var rows [][]interface{}
	if idx < len(f.results) {
		rows = f.results[idx]
	}
	return &fakeRows{rows: rows, pos: -1}, nil
}

func (f *fakeExecutor) calls() []recordedQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedQuery(nil), f.queries...)
}

type fakeRows struct {
	rows   [][]interface{}
	pos    int
	closed bool
}

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *fakeRows) Scan(dest ...interface{}) error {
	row := r.rows[r.pos]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: expected %d destinations, got %d", len(row), len(dest))
	}
	for i := range dest {
		if err := assign(dest[i], row[i]); err != nil {
			return fmt.Errorf("scan column %d: %w", i, err)
		}
	}
	return nil
}

func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) Close() { r.closed = true }

// assign copies src into the pointer dest, allocating for pointer-to-pointer
// destinations the way real drivers do for nullable columns.
func assign(dest, src interface{}) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("destination %T is not a non-nil pointer", dest)
	}
	dv = dv.Elem()

	if src == nil {
		dv.Set(reflect.Zero(dv.Type()))
		return nil
	}

	sv := reflect.ValueOf(src)
	target := dv.Type()
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	if !sv.Type().ConvertibleTo(target) {
		return fmt.Errorf("cannot convert %T to %s", src, target)
	}
	converted := sv.Convert(target)

	if dv.Kind() == reflect.Pointer {
		p := reflect.New(target)
		p.Elem().Set(converted)
		dv.Set(p)
		return nil
	}
	dv.Set(converted)
	return nil
}

// Row helpers in column order of jobColumns, companyColumns and userColumns.

func jobRow(id int, title string, salary, equity, handle interface{}) []interface{} {
	return []interface{}{id, title, salary, equity, handle}
}

func companyRow(handle, name, description string, numEmployees, logoURL interface{}) []interface{} {
	return []interface{}{handle, name, description, numEmployees, logoURL}
}

func userRow(username, first, last, email string, isAdmin bool) []interface{} {
	return []interface{}{username, first, last, email, isAdmin}
}

func rows(r ...[]interface{}) [][]interface{} {
	return r
}

const testTimeout = 5 * time.Second
