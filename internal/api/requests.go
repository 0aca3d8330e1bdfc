// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/tomtom215/jobly/internal/models"
	"github.com/tomtom215/jobly/internal/validation"
)

// JobSearchRequest holds the query parameters of GET /jobs.
type JobSearchRequest struct {
	Title     *string `json:"title"`
	MinSalary *int    `json:"minSalary" validate:"omitempty,min=0"`
	HasEquity *bool   `json:"hasEquity"`
}

// Filter converts the request into an accessor filter.
func (req JobSearchRequest) Filter() models.JobFilter {
	return models.JobFilter{
		Title:     req.Title,
		MinSalary: req.MinSalary,
		HasEquity: req.HasEquity,
	}
}

// CompanySearchRequest holds the query parameters of GET /companies.
type CompanySearchRequest struct {
	Name         *string `json:"name"`
	MinEmployees *int    `json:"minEmployees" validate:"omitempty,min=0"`
	MaxEmployees *int    `json:"maxEmployees" validate:"omitempty,min=0"`
}

// Filter converts the request into an accessor filter.
func (req CompanySearchRequest) Filter() models.CompanyFilter {
	return models.CompanyFilter{
		Name:         req.Name,
		MinEmployees: req.MinEmployees,
		MaxEmployees: req.MaxEmployees,
	}
}

// JobPatch types the values of a PATCH /jobs/{id} body for validation.
type JobPatch struct {
	Title  *string  `json:"title" validate:"omitempty,min=1"`
	Salary *int     `json:"salary" validate:"omitempty,min=0"`
	Equity *float64 `json:"equity" validate:"omitempty,min=0,max=1"`
}

// CompanyPatch types the values of a PATCH /companies/{handle} body.
type CompanyPatch struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,min=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

// UserPatch types the values of a PATCH /users/{username} body.
type UserPatch struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=30"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=30"`
	Email     *string `json:"email" validate:"omitempty,email,max=60"`
	IsAdmin   *bool   `json:"isAdmin"`
}

// parseJobSearch reads and validates the GET /jobs query string.
func parseJobSearch(r *http.Request) (JobSearchRequest, error) {
	var req JobSearchRequest
	q := r.URL.Query()
	if err := rejectUnknownParams(q, "title", "minSalary", "hasEquity"); err != nil {
		return req, err
	}

	var err error
	req.Title = stringParam(q, "title")
	if req.MinSalary, err = intParam(q, "minSalary"); err != nil {
		return req, err
	}
	if req.HasEquity, err = boolParam(q, "hasEquity"); err != nil {
		return req, err
	}

	if ve := validation.ValidateStruct(&req); ve != nil {
		return req, ve
	}
	return req, nil
}

// parseCompanySearch reads and validates the GET /companies query string.
// minEmployees greater than maxEmployees is rejected.
func parseCompanySearch(r *http.Request) (CompanySearchRequest, error) {
	var req CompanySearchRequest
	q := r.URL.Query()
	if err := rejectUnknownParams(q, "name", "minEmployees", "maxEmployees"); err != nil {
		return req, err
	}

	var err error
	req.Name = stringParam(q, "name")
	if req.MinEmployees, err = intParam(q, "minEmployees"); err != nil {
		return req, err
	}
	if req.MaxEmployees, err = intParam(q, "maxEmployees"); err != nil {
		return req, err
	}

	if ve := validation.ValidateStruct(&req); ve != nil {
		return req, ve
	}
	if req.MinEmployees != nil && req.MaxEmployees != nil && *req.MinEmployees > *req.MaxEmployees {
		return req, validation.NewFieldError("minEmployees", "lte", "maxEmployees", *req.MinEmployees,
			"minEmployees cannot be greater than maxEmployees")
	}
	return req, nil
}

func rejectUnknownParams(q url.Values, allowed ...string) error {
	var unknown []string
	for key := range q {
		if !containsField(allowed, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return validation.NewFieldError(unknown[0], "unknown", "", nil,
		fmt.Sprintf("unknown filter %q", unknown[0]))
}

// stringParam returns nil when key is absent. An empty value is passed on
// and ignored by the filter composer.
func stringParam(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key)
	return &v
}

func intParam(q url.Values, key string) (*int, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validation.NewFieldError(key, "number", "", raw, key+" must be a whole number")
	}
	return &n, nil
}

func boolParam(q url.Values, key string) (*bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, validation.NewFieldError(key, "boolean", "", raw, key+" must be true or false")
	}
	return &b, nil
}
