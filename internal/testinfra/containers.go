// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

//go:build integration

package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// dockerHealthy asks the testcontainers Docker provider whether the daemon
// answers within timeout.
func dockerHealthy(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	provider, err := testcontainers.NewDockerProvider()
	if err != nil {
		return false
	}
	defer provider.Close() //nolint:errcheck
	return provider.Health(ctx) == nil
}

// RequirePostgres starts a Postgres container for the duration of t and
// terminates it on cleanup. t is skipped when no Docker daemon is reachable
// and fails when the container cannot start.
func RequirePostgres(t *testing.T, opts ...PostgresOption) *PostgresContainer {
	t.Helper()

	if !dockerHealthy(5 * time.Second) {
		t.Skip("Skipping test: Docker not available")
	}

	pg, err := StartPostgres(context.Background(), opts...)
	if err != nil {
		t.Fatalf("Failed to start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := pg.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate postgres container: %v", err)
		}
	})
	return pg
}
