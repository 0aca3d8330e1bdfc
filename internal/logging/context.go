// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// requestIDs travel together: the request ID may come from an upstream proxy,
// the correlation ID is always ours.
type requestIDs struct {
	request     string
	correlation string
}

type requestIDsKey struct{}

// ContextWithRequestID stores requestID in ctx along with a fresh 8-character
// correlation ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDsKey{}, requestIDs{
		request:     requestID,
		correlation: uuid.New().String()[:8],
	})
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	ids, _ := ctx.Value(requestIDsKey{}).(requestIDs)
	return ids.request
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	ids, _ := ctx.Value(requestIDsKey{}).(requestIDs)
	return ids.correlation
}

// Ctx returns the global logger, tagged with request_id and correlation_id
// when ctx came through the RequestID middleware.
//
//	logging.Ctx(ctx).Debug().Str("table", "jobs").Msg("No matching row")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if ids, ok := ctx.Value(requestIDsKey{}).(requestIDs); ok {
		l = l.With().
			Str("request_id", ids.request).
			Str("correlation_id", ids.correlation).
			Logger()
	}
	return &l
}
