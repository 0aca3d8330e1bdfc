// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/jobly/internal/config"
	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/models"
)

// fakeJobStore records the arguments it receives and returns canned results.
type fakeJobStore struct {
	calls      int
	lastFilter models.JobFilter
	lastID     int
	lastFields query.FieldMap
	lastNew    models.NewJob

	jobs   []models.Job
	job    *models.Job
	detail *models.JobDetail
	err    error
}

func (f *fakeJobStore) Create(_ context.Context, job models.NewJob) (*models.Job, error) {
	f.calls++
	f.lastNew = job
	return f.job, f.err
}

func (f *fakeJobStore) FindAll(_ context.Context, filter models.JobFilter) ([]models.Job, error) {
	f.calls++
	f.lastFilter = filter
	return f.jobs, f.err
}

func (f *fakeJobStore) Get(_ context.Context, id int) (*models.JobDetail, error) {
	f.calls++
	f.lastID = id
	return f.detail, f.err
}

func (f *fakeJobStore) Update(_ context.Context, id int, fields query.FieldMap) (*models.Job, error) {
	f.calls++
	f.lastID = id
	f.lastFields = fields
	if f.err != nil {
		return nil, f.err
	}
	// Mirror the accessor: an empty update never reaches SQL.
	if _, err := query.PartialUpdate(fields, nil); err != nil {
		return nil, err
	}
	return f.job, nil
}

func (f *fakeJobStore) Remove(_ context.Context, id int) error {
	f.calls++
	f.lastID = id
	return f.err
}

type fakeCompanyStore struct {
	calls      int
	lastFilter models.CompanyFilter
	lastHandle string
	lastFields query.FieldMap
	lastNew    models.NewCompany

	companies []models.Company
	company   *models.Company
	detail    *models.CompanyDetail
	err       error
}

func (f *fakeCompanyStore) Create(_ context.Context, c models.NewCompany) (*models.Company, error) {
	f.calls++
	f.lastNew = c
	return f.company, f.err
}

func (f *fakeCompanyStore) FindAll(_ context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	f.calls++
	f.lastFilter = filter
	return f.companies, f.err
}

func (f *fakeCompanyStore) Get(_ context.Context, handle string) (*models.CompanyDetail, error) {
	f.calls++
	f.lastHandle = handle
	return f.detail, f.err
}

func (f *fakeCompanyStore) Update(_ context.Context, handle string, fields query.FieldMap) (*models.Company, error) {
	f.calls++
	f.lastHandle = handle
	f.lastFields = fields
	return f.company, f.err
}

func (f *fakeCompanyStore) Remove(_ context.Context, handle string) error {
	f.calls++
	f.lastHandle = handle
	return f.err
}

type fakeUserStore struct {
	calls        int
	lastUsername string
	lastFields   query.FieldMap

	users []models.User
	user  *models.User
	err   error
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	f.calls++
	return f.users, f.err
}

func (f *fakeUserStore) Get(_ context.Context, username string) (*models.User, error) {
	f.calls++
	f.lastUsername = username
	return f.user, f.err
}

func (f *fakeUserStore) Update(_ context.Context, username string, fields query.FieldMap) (*models.User, error) {
	f.calls++
	f.lastUsername = username
	f.lastFields = fields
	return f.user, f.err
}

func (f *fakeUserStore) Remove(_ context.Context, username string) error {
	f.calls++
	f.lastUsername = username
	return f.err
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	return f.err
}

// testEnv bundles the fakes behind a fully wired router.
type testEnv struct {
	jobs      *fakeJobStore
	companies *fakeCompanyStore
	users     *fakeUserStore
	db        *fakePinger
	handler   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		jobs:      &fakeJobStore{},
		companies: &fakeCompanyStore{},
		users:     &fakeUserStore{},
		db:        &fakePinger{},
	}
	h := NewHandler(Stores{
		Jobs:      env.jobs,
		Companies: env.companies,
		Users:     env.users,
		DB:        env.db,
	}, "test")

	mw := NewChiMiddleware(config.SecurityConfig{RateLimitDisabled: true})
	env.handler = NewRouter(h, mw).SetupChi()
	return env
}

// do sends a request through the router and returns the recorder.
func (env *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

type testResponse struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) testResponse {
	t.Helper()
	var resp testResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) testResponse {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("Expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp.Status != "error" {
		t.Errorf("Expected status 'error', got %q", resp.Status)
	}
	if resp.Error == nil {
		t.Fatal("Expected error object in response")
	}
	if resp.Error.Code != code {
		t.Errorf("Expected error code %s, got %s", code, resp.Error.Code)
	}
	return resp
}
