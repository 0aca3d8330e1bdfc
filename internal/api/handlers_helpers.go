// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/jobly/internal/database"
	"github.com/tomtom215/jobly/internal/database/query"
	"github.com/tomtom215/jobly/internal/logging"
	"github.com/tomtom215/jobly/internal/models"
	"github.com/tomtom215/jobly/internal/validation"
)

// maxBodyBytes caps request bodies accepted by POST and PATCH handlers.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope. start is when the handler
// began work and feeds query_time_ms.
func respondSuccess(w http.ResponseWriter, status int, data interface{}, start time.Time) {
	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// generateETag returns a strong ETag: the quoted FNV-64a hash of the body.
func generateETag(data []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return `"` + strconv.FormatUint(h.Sum64(), 16) + `"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondAPIError(w, status, &models.APIError{
		Code:    code,
		Message: message,
	})
}

// respondAPIError sends a prepared APIError, keeping its details.
func respondAPIError(w http.ResponseWriter, status int, apiErr *models.APIError) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Data:   nil,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: apiErr,
	})
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return toModelAPIError(validationErr)
}

func toModelAPIError(ve *validation.RequestValidationError) *models.APIError {
	apiErr := ve.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// respondStoreError maps an accessor error onto a status code and error
// envelope. action names the failed operation for 5xx messages.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var ve *validation.RequestValidationError
	switch {
	case errors.As(err, &ve):
		respondAPIError(w, http.StatusBadRequest, toModelAPIError(ve))
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, query.ErrBadInput):
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", badInputMessage(err), nil)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database temporarily unavailable", nil)
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Warn().Err(err).Str("action", action).Msg("Request timed out")
		respondError(w, http.StatusGatewayTimeout, "TIMEOUT", "Failed to "+action+": timed out", nil)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("action", action).Msg("Store operation failed")
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to "+action, nil)
	}
}

// badInputMessage drops the driver detail that follows the classified
// sentinel so constraint errors do not leak SQL text to clients.
func badInputMessage(err error) string {
	switch {
	case errors.Is(err, query.ErrNoData):
		return "No data"
	case errors.Is(err, database.ErrDuplicate):
		return database.ErrDuplicate.Error()
	case errors.Is(err, database.ErrInvalidReference):
		return database.ErrInvalidReference.Error()
	case errors.Is(err, database.ErrConstraint):
		return database.ErrConstraint.Error()
	default:
		return err.Error()
	}
}

// decodeJSONBody decodes a JSON object into v, rejecting unknown fields and
// bodies over maxBodyBytes.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	return decodeStrict(body, v)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", query.ErrBadInput, err)
	}
	return body, nil
}

func decodeStrict(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", query.ErrBadInput, err)
	}
	return nil
}
