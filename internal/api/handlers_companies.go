// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/jobly/internal/models"
)

// ListCompanies handles GET /companies with optional name, minEmployees and
// maxEmployees filters.
func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := parseCompanySearch(r)
	if err != nil {
		respondStoreError(w, r, err, "search companies")
		return
	}

	companies, err := h.companies.FindAll(r.Context(), req.Filter())
	if err != nil {
		respondStoreError(w, r, err, "search companies")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"companies": companies}, start)
}

// CreateCompany handles POST /companies.
func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var input models.NewCompany
	if err := decodeJSONBody(w, r, &input); err != nil {
		respondStoreError(w, r, err, "create company")
		return
	}
	if apiErr := validateRequest(&input); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	company, err := h.companies.Create(r.Context(), input)
	if err != nil {
		respondStoreError(w, r, err, "create company")
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]interface{}{"company": company}, start)
}

// GetCompany handles GET /companies/{handle}. The response includes the
// company's jobs.
func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	company, err := h.companies.Get(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		respondStoreError(w, r, err, "get company")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"company": company}, start)
}

// UpdateCompany handles PATCH /companies/{handle}. The handle itself cannot change.
func (h *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	fields, err := decodePatch(w, r, companyPatchFields, &CompanyPatch{})
	if err != nil {
		respondStoreError(w, r, err, "update company")
		return
	}

	company, err := h.companies.Update(r.Context(), chi.URLParam(r, "handle"), fields)
	if err != nil {
		respondStoreError(w, r, err, "update company")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"company": company}, start)
}

// DeleteCompany handles DELETE /companies/{handle}.
func (h *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	handle := chi.URLParam(r, "handle")
	if err := h.companies.Remove(r.Context(), handle); err != nil {
		respondStoreError(w, r, err, "delete company")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"deleted": handle}, start)
}
