// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

/*
Package api exposes the record accessors over HTTP using the Chi router.

The package is a thin layer: it decodes query strings into validated search
requests, decodes PATCH bodies into ordered query.FieldMaps, calls the
accessors in internal/database and renders the result in the standard
models.APIResponse envelope.

# Routes

	GET    /health
	GET    /metrics
	GET    /jobs?title=&minSalary=&hasEquity=
	POST   /jobs
	GET    /jobs/{id}
	PATCH  /jobs/{id}
	DELETE /jobs/{id}
	GET    /companies?name=&minEmployees=&maxEmployees=
	POST   /companies
	GET    /companies/{handle}
	PATCH  /companies/{handle}
	DELETE /companies/{handle}
	GET    /users
	GET    /users/{username}
	PATCH  /users/{username}
	DELETE /users/{username}

# Error Mapping

Accessor errors map onto response codes:

  - query.ErrBadInput (including ErrNoData and constraint violations): 400 BAD_REQUEST
  - *validation.RequestValidationError: 400 VALIDATION_ERROR
  - database.ErrNotFound: 404 NOT_FOUND
  - an open circuit breaker: 503 SERVICE_UNAVAILABLE
  - anything else: 500 DATABASE_ERROR

# Partial Updates

PATCH bodies must be a flat JSON object. Keys keep their order from the body,
which fixes the placeholder numbering of the generated SET clause. Each
resource declares the keys it accepts; identity columns such as id, handle and
username are never updatable.

# Middleware

Router installs request IDs, real-IP extraction, panic recovery, access
logging, Prometheus metrics, compression, CORS (go-chi/cors) and per-IP rate
limiting (go-chi/httprate).
*/
package api
