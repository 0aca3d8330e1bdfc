// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/validation"
)

func TestDecodeFieldMap(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []query.Field
	}{
		{
			name: "keeps body order",
			body: `{"lastName": "L", "firstName": "F"}`,
			want: []query.Field{{Name: "lastName", Value: "L"}, {Name: "firstName", Value: "F"}},
		},
		{
			name: "integers and floats",
			body: `{"salary": 120000, "equity": 0.5}`,
			want: []query.Field{{Name: "salary", Value: int64(120000)}, {Name: "equity", Value: 0.5}},
		},
		{
			name: "null and boolean",
			body: `{"logoUrl": null, "isAdmin": true}`,
			want: []query.Field{{Name: "logoUrl", Value: nil}, {Name: "isAdmin", Value: true}},
		},
		{
			name: "repeated key keeps first position",
			body: `{"title": "a", "salary": 1, "title": "b"}`,
			want: []query.Field{{Name: "title", Value: "b"}, {Name: "salary", Value: int64(1)}},
		},
		{
			name: "empty object",
			body: `{}`,
			want: []query.Field{},
		},
	}

	allowed := []string{"title", "salary", "equity", "firstName", "lastName", "logoUrl", "isAdmin"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := decodeFieldMap([]byte(tt.body), allowed)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got := fields.Fields(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDecodeFieldMap_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantValidation bool
	}{
		{"not an object", `"title"`, false},
		{"array", `[{"title": "x"}]`, false},
		{"truncated", `{"title": "x"`, false},
		{"not allowed", `{"id": 1}`, true},
		{"nested object", `{"title": {"a": 1}}`, true},
		{"nested array", `{"title": ["a"]}`, true},
	}

	allowed := []string{"title"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeFieldMap([]byte(tt.body), allowed)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			var ve *validation.RequestValidationError
			if got := errors.As(err, &ve); got != tt.wantValidation {
				t.Errorf("Expected validation error %v, got %v (%v)", tt.wantValidation, got, err)
			}
			if !tt.wantValidation && !errors.Is(err, query.ErrBadInput) {
				t.Errorf("Expected ErrBadInput, got %v", err)
			}
		})
	}
}

func TestDecodeFieldMap_FeedsPartialUpdate(t *testing.T) {
	fields, err := decodeFieldMap([]byte(`{"firstName": "Aliya", "age": 32}`), []string{"firstName", "age"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	clause, err := query.PartialUpdate(fields, query.Aliases{"firstName": "first_name"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := clause.Join(", "); got != `"first_name"=$1, "age"=$2` {
		t.Errorf("Expected SET clause %q, got %q", `"first_name"=$1, "age"=$2`, got)
	}
	want := []interface{}{"Aliya", int64(32)}
	if got := clause.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected values %v, got %v", want, got)
	}
}
