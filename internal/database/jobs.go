// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package database

import (
	"context"
	"time"

	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/models"
)

const jobColumns = `id, title, salary, equity, company_handle AS "companyHandle"`

// Job fields map one to one onto columns, so updates use no aliases.
var jobFilterColumns = query.FilterColumns{
	Substring: "title",
	Min:       "salary",
	Positive:  "equity",
}

// JobStore reads and writes the jobs table.
type JobStore struct {
	store
}

// NewJobStore creates a JobStore. A zero timeout leaves statements bounded
// only by the caller's context.
func NewJobStore(exec Executor, timeout time.Duration) *JobStore {
	return &JobStore{store{exec: exec, table: "jobs", timeout: timeout}}
}

func scanJob(r Rows, j *models.Job) error {
	return r.Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
}

// Create inserts a job and returns it with its generated id.
func (s *JobStore) Create(ctx context.Context, job models.NewJob) (*models.Job, error) {
	stmt := `INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + jobColumns

	var created models.Job
	args := []interface{}{job.Title, nullable(job.Salary), nullable(job.Equity), job.CompanyHandle}
	if _, err := s.run(ctx, "insert", stmt, args, func(r Rows) error { return scanJob(r, &created) }); err != nil {
		return nil, err
	}
	return &created, nil
}

// FindAll returns the jobs matching filter ordered by id. Title matches as a
// case-insensitive substring, MinSalary is inclusive and HasEquity=true keeps
// only jobs with non-zero equity.
func (s *JobStore) FindAll(ctx context.Context, filter models.JobFilter) ([]models.Job, error) {
	where := query.ComposeFilters(query.FilterBag{
		Substring: filter.Title,
		Min:       filter.MinSalary,
		Positive:  filter.HasEquity,
	}, jobFilterColumns)

	stmt := "SELECT " + jobColumns + " FROM jobs" + where.Where() + " ORDER BY id"

	jobs := []models.Job{}
	_, err := s.run(ctx, "select", stmt, where.Values(), func(r Rows) error {
		var j models.Job
		if err := scanJob(r, &j); err != nil {
			return err
		}
		jobs = append(jobs, j)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get returns the job with the given id together with its company.
func (s *JobStore) Get(ctx context.Context, id int) (*models.JobDetail, error) {
	stmt := "SELECT " + jobColumns + " FROM jobs WHERE id = $1"

	var detail models.JobDetail
	n, err := s.run(ctx, "select", stmt, []interface{}{id}, func(r Rows) error { return scanJob(r, &detail.Job) })
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, s.notFound(ctx, "job", "id", id)
	}

	companyStmt := "SELECT " + companyColumns + " FROM companies WHERE handle = $1"
	_, err = s.run(ctx, "select", companyStmt, []interface{}{detail.CompanyHandle}, func(r Rows) error {
		var c models.Company
		if err := scanCompany(r, &c); err != nil {
			return err
		}
		detail.Company = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update applies a partial update to the job with the given id and returns the
// updated row. The caller decides which fields may change.
func (s *JobStore) Update(ctx context.Context, id int, fields query.FieldMap) (*models.Job, error) {
	set, err := query.PartialUpdate(fields, nil)
	if err != nil {
		return nil, s.rejectBadInput(ctx, "update", err)
	}

	stmt := "UPDATE jobs SET " + set.Join(", ") +
		" WHERE id = " + query.Placeholder(set.Next()) +
		" RETURNING " + jobColumns

	var updated models.Job
	n, err := s.run(ctx, "update", stmt, set.Args(id), func(r Rows) error { return scanJob(r, &updated) })
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, s.notFound(ctx, "job", "id", id)
	}
	return &updated, nil
}

// Remove deletes the job with the given id.
func (s *JobStore) Remove(ctx context.Context, id int) error {
	n, err := s.run(ctx, "delete", "DELETE FROM jobs WHERE id = $1 RETURNING id", []interface{}{id}, nil)
	if err != nil {
		return err
	}
	if n == 0 {
		return s.notFound(ctx, "job", "id", id)
	}
	return nil
}
