// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package query

import "fmt"

// Field is one logical-name/value pair of a FieldMap.
type Field struct {
	Name  string
	Value interface{}
}

// FieldMap is an insertion-ordered map of logical field names to new values.
//
// Order matters: PartialUpdate numbers placeholders in insertion order.
// Setting a name that is already present replaces its value in place.
// The zero value is an empty map ready to use.
type FieldMap struct {
	fields []Field
	index  map[string]int
}

// NewFieldMap builds a FieldMap from fields, applying Set in order.
func NewFieldMap(fields ...Field) FieldMap {
	var m FieldMap
	for _, f := range fields {
		m.Set(f.Name, f.Value)
	}
	return m
}

// Set stores value under name.
func (m *FieldMap) Set(name string, value interface{}) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[name]; ok {
		m.fields[i].Value = value
		return
	}
	m.index[name] = len(m.fields)
	m.fields = append(m.fields, Field{Name: name, Value: value})
}

// Get returns the value stored under name.
func (m FieldMap) Get(name string) (interface{}, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.fields[i].Value, true
}

// Len returns the number of fields.
func (m FieldMap) Len() int {
	return len(m.fields)
}

// Fields returns a copy of the fields in insertion order.
func (m FieldMap) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Aliases maps logical field names to storage column names.
// Names without an entry map to themselves.
type Aliases map[string]string

// Column resolves the storage column for a logical field name.
func (a Aliases) Column(name string) string {
	if col, ok := a[name]; ok && col != "" {
		return col
	}
	return name
}

// PartialUpdate builds the SET assignments for updating the given fields.
//
// Each field becomes `"<column>"=$k`, k counting from 1 in insertion order,
// and Values() holds the field values in the same order. Unknown names are
// not rejected; they fall back to a column of the same name. The caller is
// responsible for only passing fields its entity allows to change.
//
// An empty FieldMap returns ErrNoData so no statement with an empty SET
// list is ever issued.
func PartialUpdate(fields FieldMap, aliases Aliases) (Clause, error) {
	if fields.Len() == 0 {
		return Clause{}, ErrNoData
	}

	c := Clause{
		fragments: make([]string, 0, fields.Len()),
		values:    make([]interface{}, 0, fields.Len()),
	}
	for i, f := range fields.fields {
		col := QuoteIdentifier(aliases.Column(f.Name))
		c.fragments = append(c.fragments, fmt.Sprintf("%s=%s", col, Placeholder(i+1)))
		c.values = append(c.values, f.Value)
	}
	return c, nil
}
