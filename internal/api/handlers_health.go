// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/jobly/internal/models"
)

// Health handles GET /health. A failed database ping reports "degraded" with
// 503 so load balancers can take the instance out of rotation.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	dbConnected := h.db != nil && h.db.Ping(r.Context()) == nil

	status := "healthy"
	code := http.StatusOK
	if !dbConnected {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	respondSuccess(w, code, models.HealthStatus{
		Status:            status,
		Version:           h.version,
		DatabaseConnected: dbConnected,
		Uptime:            time.Since(h.startTime).Seconds(),
	}, start)
}
