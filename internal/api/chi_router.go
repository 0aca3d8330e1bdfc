// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/jobly/internal/config"
	"github.com/tomtom215/jobly/internal/middleware"
)

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil chiMW uses the default security settings.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	if chiMW == nil {
		chiMW = NewChiMiddleware(config.SecurityConfig{})
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
	}
}

// SetupChi configures all HTTP routes and returns the root handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	r.Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", router.handler.ListJobs)
			r.Post("/", router.handler.CreateJob)
			r.Get("/{id}", router.handler.GetJob)
			r.Patch("/{id}", router.handler.UpdateJob)
			r.Delete("/{id}", router.handler.DeleteJob)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", router.handler.ListCompanies)
			r.Post("/", router.handler.CreateCompany)
			r.Get("/{handle}", router.handler.GetCompany)
			r.Patch("/{handle}", router.handler.UpdateCompany)
			r.Delete("/{handle}", router.handler.DeleteCompany)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", router.handler.ListUsers)
			r.Get("/{username}", router.handler.GetUser)
			r.Patch("/{username}", router.handler.UpdateUser)
			r.Delete("/{username}", router.handler.DeleteUser)
		})
	})

	return r
}
