// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package models

// Job is a job posting as stored in the jobs table.
//
// Equity is a fraction in [0, 1]; Salary and Equity may be null.
type Job struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Salary        *int     `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"companyHandle"`
}

// JobDetail is a Job together with the company that posted it.
type JobDetail struct {
	Job
	Company *Company `json:"company"`
}

// NewJob is the input for creating a job.
type NewJob struct {
	Title         string   `json:"title" validate:"required,min=1"`
	Salary        *int     `json:"salary" validate:"omitempty,min=0"`
	Equity        *float64 `json:"equity" validate:"omitempty,min=0,max=1"`
	CompanyHandle string   `json:"companyHandle" validate:"required,min=1,max=25"`
}

// JobFilter holds the optional search filters for jobs.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}
