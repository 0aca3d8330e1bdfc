// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ListUsers handles GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	users, err := h.users.FindAll(r.Context())
	if err != nil {
		respondStoreError(w, r, err, "list users")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"users": users}, start)
}

// GetUser handles GET /users/{username}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	user, err := h.users.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		respondStoreError(w, r, err, "get user")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"user": user}, start)
}

// UpdateUser handles PATCH /users/{username}. Usernames and passwords are
// not updatable here.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	fields, err := decodePatch(w, r, userPatchFields, &UserPatch{})
	if err != nil {
		respondStoreError(w, r, err, "update user")
		return
	}

	user, err := h.users.Update(r.Context(), chi.URLParam(r, "username"), fields)
	if err != nil {
		respondStoreError(w, r, err, "update user")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"user": user}, start)
}

// DeleteUser handles DELETE /users/{username}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	username := chi.URLParam(r, "username")
	if err := h.users.Remove(r.Context(), username); err != nil {
		respondStoreError(w, r, err, "delete user")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{"deleted": username}, start)
}
