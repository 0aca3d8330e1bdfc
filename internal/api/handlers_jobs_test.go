// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/jobly/internal/database"
	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/models"
)

func TestListJobs_PassesFilters(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.jobs = []models.Job{{ID: 1, Title: "Engineer", CompanyHandle: "c1"}}

	rec := env.do(http.MethodGet, "/jobs?title=eng&minSalary=0&hasEquity=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	f := env.jobs.lastFilter
	if f.Title == nil || *f.Title != "eng" {
		t.Errorf("Expected title filter 'eng', got %v", f.Title)
	}
	if f.MinSalary == nil || *f.MinSalary != 0 {
		t.Errorf("Expected minSalary 0 to be present, got %v", f.MinSalary)
	}
	if f.HasEquity == nil || !*f.HasEquity {
		t.Errorf("Expected hasEquity true, got %v", f.HasEquity)
	}

	resp := decodeResponse(t, rec)
	var data struct {
		Jobs []models.Job `json:"jobs"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if len(data.Jobs) != 1 || data.Jobs[0].Title != "Engineer" {
		t.Errorf("Expected one job 'Engineer', got %+v", data.Jobs)
	}
}

func TestListJobs_NoFilters(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.jobs = []models.Job{}

	rec := env.do(http.MethodGet, "/jobs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	f := env.jobs.lastFilter
	if f.Title != nil || f.MinSalary != nil || f.HasEquity != nil {
		t.Errorf("Expected empty filter, got %+v", f)
	}
}

func TestListJobs_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"non-numeric minSalary", "/jobs?minSalary=lots"},
		{"negative minSalary", "/jobs?minSalary=-5"},
		{"non-boolean hasEquity", "/jobs?hasEquity=maybe"},
		{"unknown parameter", "/jobs?companyHandle=c1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(http.MethodGet, tt.target, "")
			expectError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
			if env.jobs.calls != 0 {
				t.Errorf("Expected store not to be called, got %d calls", env.jobs.calls)
			}
		})
	}
}

func TestCreateJob(t *testing.T) {
	env := newTestEnv(t)
	salary := 100
	env.jobs.job = &models.Job{ID: 9, Title: "new", Salary: &salary, CompanyHandle: "c1"}

	rec := env.do(http.MethodPost, "/jobs", `{"title":"new","salary":100,"companyHandle":"c1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.jobs.lastNew.Title != "new" || env.jobs.lastNew.CompanyHandle != "c1" {
		t.Errorf("Expected decoded job input, got %+v", env.jobs.lastNew)
	}
	if env.jobs.lastNew.Salary == nil || *env.jobs.lastNew.Salary != 100 {
		t.Errorf("Expected salary 100, got %v", env.jobs.lastNew.Salary)
	}
}

func TestCreateJob_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"missing company", `{"title":"new"}`, "VALIDATION_ERROR"},
		{"equity above one", `{"title":"new","equity":1.5,"companyHandle":"c1"}`, "VALIDATION_ERROR"},
		{"unknown field", `{"title":"new","companyHandle":"c1","id":3}`, "BAD_REQUEST"},
		{"malformed json", `{"title":`, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(http.MethodPost, "/jobs", tt.body)
			expectError(t, rec, http.StatusBadRequest, tt.code)
			if env.jobs.calls != 0 {
				t.Errorf("Expected store not to be called, got %d calls", env.jobs.calls)
			}
		})
	}
}

func TestGetJob(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.detail = &models.JobDetail{
		Job:     models.Job{ID: 4, Title: "t", CompanyHandle: "c1"},
		Company: &models.Company{Handle: "c1", Name: "C1"},
	}

	rec := env.do(http.MethodGet, "/jobs/4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if env.jobs.lastID != 4 {
		t.Errorf("Expected id 4, got %d", env.jobs.lastID)
	}
}

func TestGetJob_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	for _, target := range []string{"/jobs/abc", "/jobs/0"} {
		rec := env.do(http.MethodGet, target, "")
		expectError(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	}
	if env.jobs.calls != 0 {
		t.Errorf("Expected store not to be called, got %d calls", env.jobs.calls)
	}
}

func TestGetJob_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.err = &database.NotFoundError{Entity: "job", Field: "id", Key: 7}

	rec := env.do(http.MethodGet, "/jobs/7", "")
	resp := expectError(t, rec, http.StatusNotFound, "NOT_FOUND")
	if resp.Error.Message != "no job found with id: 7" {
		t.Errorf("Expected not found message, got %q", resp.Error.Message)
	}
}

func TestUpdateJob_PreservesBodyOrder(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.job = &models.Job{ID: 3, Title: "x", CompanyHandle: "c1"}

	rec := env.do(http.MethodPatch, "/jobs/3", `{"salary": 5000, "equity": 0.25, "title": "x"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.jobs.lastID != 3 {
		t.Errorf("Expected id 3, got %d", env.jobs.lastID)
	}

	want := []query.Field{
		{Name: "salary", Value: int64(5000)},
		{Name: "equity", Value: 0.25},
		{Name: "title", Value: "x"},
	}
	if got := env.jobs.lastFields.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected fields %v, got %v", want, got)
	}
}

func TestUpdateJob_NullClearsColumn(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.job = &models.Job{ID: 3, Title: "x", CompanyHandle: "c1"}

	rec := env.do(http.MethodPatch, "/jobs/3", `{"salary": null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	v, ok := env.jobs.lastFields.Get("salary")
	if !ok || v != nil {
		t.Errorf("Expected salary present with nil value, got %v (present=%v)", v, ok)
	}
}

func TestUpdateJob_EmptyBodyIsBadRequest(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPatch, "/jobs/3", `{}`)
	resp := expectError(t, rec, http.StatusBadRequest, "BAD_REQUEST")
	if resp.Error.Message != "No data" {
		t.Errorf("Expected 'No data', got %q", resp.Error.Message)
	}
}

func TestUpdateJob_Rejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"identity field", `{"id": 4}`, "VALIDATION_ERROR"},
		{"company handle", `{"companyHandle": "other"}`, "VALIDATION_ERROR"},
		{"nested value", `{"title": {"text": "x"}}`, "VALIDATION_ERROR"},
		{"wrong type", `{"salary": "lots"}`, "BAD_REQUEST"},
		{"equity out of range", `{"equity": 2}`, "VALIDATION_ERROR"},
		{"array body", `[1, 2]`, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(http.MethodPatch, "/jobs/3", tt.body)
			expectError(t, rec, http.StatusBadRequest, tt.code)
			if env.jobs.calls != 0 {
				t.Errorf("Expected store not to be called, got %d calls", env.jobs.calls)
			}
		})
	}
}

func TestDeleteJob(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodDelete, "/jobs/12", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if env.jobs.lastID != 12 {
		t.Errorf("Expected id 12, got %d", env.jobs.lastID)
	}
}

func TestJobs_StoreFailures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"database failure", errors.New("connection reset"), http.StatusInternalServerError, "DATABASE_ERROR"},
		{"breaker open", gobreaker.ErrOpenState, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"constraint", database.ErrConstraint, http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.jobs.err = tt.err
			rec := env.do(http.MethodGet, "/jobs", "")
			resp := expectError(t, rec, tt.status, tt.code)
			if tt.status == http.StatusInternalServerError && resp.Error.Message != "Failed to search jobs" {
				t.Errorf("Expected generic message, got %q", resp.Error.Message)
			}
		})
	}
}
