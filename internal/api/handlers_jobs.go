// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/jobly/internal/models"
	"github.com/tomtom215/jobly/internal/validation"
)

// ListJobs handles GET /jobs with optional title, minSalary and hasEquity filters.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := parseJobSearch(r)
	if err != nil {
		respondStoreError(w, r, err, "search jobs")
		return
	}

	jobs, err := h.jobs.FindAll(r.Context(), req.Filter())
	if err != nil {
		respondStoreError(w, r, err, "search jobs")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"jobs": jobs}, start)
}

// CreateJob handles POST /jobs.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var input models.NewJob
	if err := decodeJSONBody(w, r, &input); err != nil {
		respondStoreError(w, r, err, "create job")
		return
	}
	if apiErr := validateRequest(&input); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	job, err := h.jobs.Create(r.Context(), input)
	if err != nil {
		respondStoreError(w, r, err, "create job")
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{"job": job}, start)
}

// GetJob handles GET /jobs/{id}.
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := jobIDParam(r)
	if err != nil {
		respondStoreError(w, r, err, "get job")
		return
	}

	job, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err, "get job")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"job": job}, start)
}

// UpdateJob handles PATCH /jobs/{id}. Only title, salary and equity may change.
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := jobIDParam(r)
	if err != nil {
		respondStoreError(w, r, err, "update job")
		return
	}

	fields, err := decodePatch(w, r, jobPatchFields, &JobPatch{})
	if err != nil {
		respondStoreError(w, r, err, "update job")
		return
	}

	job, err := h.jobs.Update(r.Context(), id, fields)
	if err != nil {
		respondStoreError(w, r, err, "update job")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"job": job}, start)
}

// DeleteJob handles DELETE /jobs/{id}.
func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := jobIDParam(r)
	if err != nil {
		respondStoreError(w, r, err, "delete job")
		return
	}

	if err := h.jobs.Remove(r.Context(), id); err != nil {
		respondStoreError(w, r, err, "delete job")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"deleted": id}, start)
}

func jobIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, validation.NewFieldError("id", "number", "", raw, "id must be a positive whole number")
	}
	return id, nil
}
