// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package models

import "time"

// APIResponse is the envelope every endpoint writes. Status is "success"
// with Data set, or "error" with Error set:
//
//	{"status":"error","data":null,
//	 "metadata":{"timestamp":"2026-03-01T12:00:00Z"},
//	 "error":{"code":"NOT_FOUND","message":"no job found with id: 12"}}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries a machine-readable Code such as VALIDATION_ERROR,
// NOT_FOUND or DATABASE_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
