// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"context"
	"time"

	"github.com/tomtom215/jobly/internal/database"
	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/models"
)

// JobStore is the subset of database.JobStore used by the handlers.
type JobStore interface {
	Create(ctx context.Context, job models.NewJob) (*models.Job, error)
	FindAll(ctx context.Context, filter models.JobFilter) ([]models.Job, error)
	Get(ctx context.Context, id int) (*models.JobDetail, error)
	Update(ctx context.Context, id int, fields query.FieldMap) (*models.Job, error)
	Remove(ctx context.Context, id int) error
}

// CompanyStore is the subset of database.CompanyStore used by the handlers.
type CompanyStore interface {
	Create(ctx context.Context, c models.NewCompany) (*models.Company, error)
	FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error)
	Get(ctx context.Context, handle string) (*models.CompanyDetail, error)
	Update(ctx context.Context, handle string, fields query.FieldMap) (*models.Company, error)
	Remove(ctx context.Context, handle string) error
}

// UserStore is the subset of database.UserStore used by the handlers.
type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, fields query.FieldMap) (*models.User, error)
	Remove(ctx context.Context, username string) error
}

// Pinger reports executor connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores groups the dependencies of Handler.
type Stores struct {
	Jobs      JobStore
	Companies CompanyStore
	Users     UserStore
	DB        Pinger
}

// StoresFromDB returns the accessors of an opened database.
func StoresFromDB(db *database.DB) Stores {
	return Stores{
		Jobs:      db.Jobs,
		Companies: db.Companies,
		Users:     db.Users,
		DB:        db,
	}
}

// Handler serves the HTTP endpoints.
type Handler struct {
	jobs      JobStore
	companies CompanyStore
	users     UserStore
	db        Pinger
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler over the given stores.
func NewHandler(stores Stores, version string) *Handler {
	return &Handler{
		jobs:      stores.Jobs,
		companies: stores.Companies,
		users:     stores.Users,
		db:        stores.DB,
		version:   version,
		startTime: time.Now(),
	}
}
