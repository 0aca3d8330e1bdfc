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

const companyColumns = `handle, name, description, num_employees AS "numEmployees", logo_url AS "logoUrl"`

var companyAliases = query.Aliases{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

var companyFilterColumns = query.FilterColumns{
	Substring: "name",
	Min:       "num_employees",
	Max:       "num_employees",
}

// CompanyStore reads and writes the companies table, keyed by handle.
type CompanyStore struct {
	store
}

// NewCompanyStore creates a CompanyStore.
func NewCompanyStore(exec Executor, timeout time.Duration) *CompanyStore {
	return &CompanyStore{store{exec: exec, table: "companies", timeout: timeout}}
}

func scanCompany(r Rows, c *models.Company) error {
	return r.Scan(&c.Handle, &c.Name, &c.Description, &c.NumEmployees, &c.LogoURL)
}

// Create inserts a company. A handle or name already in use returns
// ErrDuplicate from the unique constraint.
func (s *CompanyStore) Create(ctx context.Context, c models.NewCompany) (*models.Company, error) {
	stmt := `INSERT INTO companies (handle, name, description, num_employees, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + companyColumns

	var created models.Company
	args := []interface{}{c.Handle, c.Name, c.Description, nullable(c.NumEmployees), nullable(c.LogoURL)}
	if _, err := s.run(ctx, "insert", stmt, args, func(r Rows) error { return scanCompany(r, &created) }); err != nil {
		return nil, err
	}
	return &created, nil
}

// FindAll returns the companies matching filter ordered by name.
func (s *CompanyStore) FindAll(ctx context.Context, filter models.CompanyFilter) ([]models.Company, error) {
	where := query.ComposeFilters(query.FilterBag{
		Substring: filter.Name,
		Min:       filter.MinEmployees,
		Max:       filter.MaxEmployees,
	}, companyFilterColumns)

	stmt := "SELECT " + companyColumns + " FROM companies" + where.Where() + " ORDER BY name"

	companies := []models.Company{}
	_, err := s.run(ctx, "select", stmt, where.Values(), func(r Rows) error {
		var c models.Company
		if err := scanCompany(r, &c); err != nil {
			return err
		}
		companies = append(companies, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// Get returns the company with its jobs ordered by id.
func (s *CompanyStore) Get(ctx context.Context, handle string) (*models.CompanyDetail, error) {
	stmt := "SELECT " + companyColumns + " FROM companies WHERE handle = $1"

	var detail models.CompanyDetail
	n, err := s.run(ctx, "select", stmt, []interface{}{handle}, func(r Rows) error { return scanCompany(r, &detail.Company) })
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, s.notFound(ctx, "company", "handle", handle)
	}

	detail.Jobs = []models.Job{}
	jobsStmt := "SELECT " + jobColumns + " FROM jobs WHERE company_handle = $1 ORDER BY id"
	_, err = s.run(ctx, "select", jobsStmt, []interface{}{handle}, func(r Rows) error {
		var j models.Job
		if err := scanJob(r, &j); err != nil {
			return err
		}
		detail.Jobs = append(detail.Jobs, j)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update applies a partial update to the company and returns the updated row.
func (s *CompanyStore) Update(ctx context.Context, handle string, fields query.FieldMap) (*models.Company, error) {
	set, err := query.PartialUpdate(fields, companyAliases)
	if err != nil {
		return nil, s.rejectBadInput(ctx, "update", err)
	}

	stmt := "UPDATE companies SET " + set.Join(", ") +
		" WHERE handle = " + query.Placeholder(set.Next()) +
		" RETURNING " + companyColumns

	var updated models.Company
	n, err := s.run(ctx, "update", stmt, set.Args(handle), func(r Rows) error { return scanCompany(r, &updated) })
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, s.notFound(ctx, "company", "handle", handle)
	}
	return &updated, nil
}

// Remove deletes the company and its jobs in one transaction. If either
// statement fails, or no company matches, nothing is deleted.
func (s *CompanyStore) Remove(ctx context.Context, handle string) error {
	return s.inTx(ctx, func(tx *store) error {
		if _, err := tx.run(ctx, "delete", "DELETE FROM jobs WHERE company_handle = $1", []interface{}{handle}, nil); err != nil {
			return err
		}

		n, err := tx.run(ctx, "delete", "DELETE FROM companies WHERE handle = $1 RETURNING handle", []interface{}{handle}, nil)
		if err != nil {
			return err
		}
		if n == 0 {
			return tx.notFound(ctx, "company", "handle", handle)
		}
		return nil
	})
}
