// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to run a disposable Postgres server, so the
// record accessors can be exercised against the same database and migrations
// used in production:
//
//	func TestJobsAgainstPostgres(t *testing.T) {
//	    pg := testinfra.RequirePostgres(t) // skips without Docker
//
//	    if err := database.Migrate(pg.URL); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Build Tags
//
// Everything here is behind the integration tag:
//
//	go test -tags integration ./...
package testinfra
