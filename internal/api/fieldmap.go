// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/validation"
)

// Updatable keys per resource. Keys outside these lists are rejected before
// any SQL is built, so identity columns can never appear in a SET clause.
var (
	jobPatchFields     = []string{"title", "salary", "equity"}
	companyPatchFields = []string{"name", "description", "numEmployees", "logoUrl"}
	userPatchFields    = []string{"firstName", "lastName", "email", "isAdmin"}
)

// decodeFieldMap reads a flat JSON object into a FieldMap keeping the key
// order of the body. Values become string, int64, float64, bool or nil.
// Nested objects and arrays are rejected, as are keys not in allowed.
func decodeFieldMap(body []byte, allowed []string) (query.FieldMap, error) {
	fields := query.NewFieldMap()

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fields, fmt.Errorf("%w: invalid JSON body: %v", query.ErrBadInput, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fields, fmt.Errorf("%w: request body must be a JSON object", query.ErrBadInput)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fields, fmt.Errorf("%w: invalid JSON body: %v", query.ErrBadInput, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fields, fmt.Errorf("%w: invalid JSON body: expected key", query.ErrBadInput)
		}
		if !containsField(allowed, key) {
			return fields, validation.NewFieldError(key, "updatable", "", nil,
				fmt.Sprintf("%s cannot be updated; allowed fields: %s", key, strings.Join(allowed, ", ")))
		}

		valTok, err := dec.Token()
		if err != nil {
			return fields, fmt.Errorf("%w: invalid JSON body: %v", query.ErrBadInput, err)
		}
		value, err := scalarValue(valTok)
		if err != nil {
			return fields, validation.NewFieldError(key, "scalar", "", nil, err.Error())
		}
		fields.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return fields, fmt.Errorf("%w: invalid JSON body: %v", query.ErrBadInput, err)
	}
	return fields, nil
}

// decodePatch reads a PATCH body into an ordered FieldMap and checks its
// values against the typed patch struct.
func decodePatch(w http.ResponseWriter, r *http.Request, allowed []string, typed interface{}) (query.FieldMap, error) {
	body, err := readBody(w, r)
	if err != nil {
		return query.FieldMap{}, err
	}
	fields, err := decodeFieldMap(body, allowed)
	if err != nil {
		return fields, err
	}
	if err := decodeStrict(body, typed); err != nil {
		return fields, err
	}
	if ve := validation.ValidateStruct(typed); ve != nil {
		return fields, ve
	}
	return fields, nil
}

func scalarValue(tok json.Token) (interface{}, error) {
	switch v := tok.(type) {
	case json.Delim:
		return nil, fmt.Errorf("nested values are not supported")
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", v.String())
		}
		return f, nil
	case string, bool, nil:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported value %v", v)
	}
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
