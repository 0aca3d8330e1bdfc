// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is created on first use. It reports fields by
// their json tag names and registers the custom "handle" tag for company
// handles (lowercase letters, digits and dashes).
//
// # Usage
//
//	type JobSearchRequest struct {
//	    Title     *string `json:"title" validate:"omitempty,min=1,max=100"`
//	    MinSalary *int    `json:"minSalary" validate:"omitempty,min=0"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// Rules that compare two optional fields are checked by the caller and
// reported with NewFieldError so they share the same error format.
package validation
