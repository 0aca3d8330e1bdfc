// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package query

import (
	"reflect"
	"testing"
)

func TestWhereBuilder_Empty(t *testing.T) {
	clause := NewWhereBuilder().Build()
	if !clause.IsEmpty() {
		t.Errorf("Expected empty clause, got %q", clause.Fragments())
	}
	if clause.Next() != 1 {
		t.Errorf("Expected next placeholder 1, got %d", clause.Next())
	}
}

func TestWhereBuilder_Combined(t *testing.T) {
	wb := NewWhereBuilder()
	wb.AddContains("name", "net")
	wb.AddConstant("num_employees > 0")
	wb.AddComparison("num_employees", "<=", 300)

	clause := wb.Build()
	expected := "name ILIKE $1 AND num_employees > 0 AND num_employees <= $2"
	if got := clause.Join(" AND "); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
	if !reflect.DeepEqual(clause.Values(), []interface{}{"%net%", 300}) {
		t.Errorf("Expected args [%%net%% 300], got %v", clause.Values())
	}
	if len(clause.Fragments()) != 3 {
		t.Errorf("Expected 3 fragments, got %d", len(clause.Fragments()))
	}
}

func TestWhereBuilder_BuildIsolatesClause(t *testing.T) {
	wb := NewWhereBuilder()
	wb.AddComparison("id", "=", 1)
	clause := wb.Build()

	wb.AddComparison("title", "=", "j1")

	if len(clause.Fragments()) != 1 || len(clause.Values()) != 1 {
		t.Errorf("Expected built clause to be unaffected, got %q / %v", clause.Fragments(), clause.Values())
	}
}

func TestClause_ArgsAppendsTrailing(t *testing.T) {
	set, err := PartialUpdate(NewFieldMap(
		Field{Name: "title", Value: "New"},
		Field{Name: "salary", Value: 500},
	), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if Placeholder(set.Next()) != "$3" {
		t.Errorf("Expected trailing placeholder $3, got %s", Placeholder(set.Next()))
	}
	args := set.Args(42)
	if !reflect.DeepEqual(args, []interface{}{"New", 500, 42}) {
		t.Errorf("Expected [New 500 42], got %v", args)
	}

	args[0] = "mutated"
	if set.Values()[0] != "New" {
		t.Error("Expected Args to return a copy")
	}
}

func TestClause_FragmentsIsACopy(t *testing.T) {
	clause := NewWhereBuilder().AddComparison("id", "=", 7).Build()
	frags := clause.Fragments()
	frags[0] = "1=1"

	if clause.Fragments()[0] != "id = $1" {
		t.Errorf("Expected clause to be unchanged, got %q", clause.Fragments()[0])
	}
}

func TestQuoteIdentifier(t *testing.T) {
	tests := map[string]string{
		"title":         `"title"`,
		"num_employees": `"num_employees"`,
		`a"b`:           `"a""b"`,
	}
	for in, want := range tests {
		if got := QuoteIdentifier(in); got != want {
			t.Errorf("QuoteIdentifier(%q): expected %q, got %q", in, want, got)
		}
	}
}
