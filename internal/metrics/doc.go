// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and are
exposed by the API router at /metrics.

# Available Metrics

Database Metrics:
  - jobly_db_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - jobly_db_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type (timeout, canceled, circuit_open, query)
  - jobly_db_rows_returned_total: Rows read from results (counter)
  - jobly_db_not_found_total: Statements that matched no row (counter)

API Metrics:
  - jobly_api_requests_total: Requests by method, route pattern and status
  - jobly_api_request_duration_seconds: Request latency (histogram)
  - jobly_api_active_requests: In-flight requests (gauge)

Circuit Breaker Metrics:
  - jobly_circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - jobly_circuit_breaker_requests_total: Labels name, result
  - jobly_circuit_breaker_state_transitions_total: Labels name, from_state, to_state

# Usage

	start := time.Now()
	rows, err := exec.Query(ctx, sql, args...)
	metrics.RecordDBQuery("update", "jobs", time.Since(start), err)
*/
package metrics
