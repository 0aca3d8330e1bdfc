// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

/*
Package models defines the data structures shared by Jobly's stores and API.

Key Components:

  - Job, JobDetail, NewJob, JobFilter: job postings
  - Company, CompanyDetail, NewCompany, CompanyFilter: companies
  - User: user accounts (password hashes never leave the database)
  - APIResponse, APIError, Metadata: the HTTP response envelope

JSON field names use the camelCase names clients send in update bodies
(numEmployees, logoUrl, companyHandle, firstName ...). The stores translate
those names to snake_case storage columns.
*/
package models
