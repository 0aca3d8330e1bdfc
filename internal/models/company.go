// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package models

// Company is a company as stored in the companies table.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyDetail is a Company together with its open jobs.
type CompanyDetail struct {
	Company
	Jobs []Job `json:"jobs"`
}

// NewCompany is the input for creating a company.
type NewCompany struct {
	Handle       string  `json:"handle" validate:"required,min=1,max=25"`
	Name         string  `json:"name" validate:"required,min=1"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,min=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

// CompanyFilter holds the optional search filters for companies.
type CompanyFilter struct {
	Name         *string
	MinEmployees *int
	MaxEmployees *int
}
