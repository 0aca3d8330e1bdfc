// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

// Package logging provides centralized zerolog-based logging for Jobly.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Msg("Server starting")
//	logging.Error().Err(err).Msg("Operation failed")
//
//	// With request context (request_id, correlation_id)
//	logging.Ctx(ctx).Info().Str("handle", h).Msg("Company updated")
//
// # Configuration
//
// Environment Variables (read through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: add file:line to entries (default: false)
//
// # slog Interop
//
// NewSlogLogger returns a *slog.Logger that writes through zerolog. The
// supervisor tree hands it to sutureslog so service restarts land in the
// same log stream.
package logging
