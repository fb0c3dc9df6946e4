// Package utils provides helpers shared across the gateway: context keys,
// JSON response writing, outbound HTTP client construction, JWT handling
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// TraceIDCtxKey holds the trace id of the inbound request.
	TraceIDCtxKey = contextKey("traceID")

	// CallerCtxKey holds the authenticated caller (JWT subject).
	CallerCtxKey = contextKey("caller")
)

// GetTraceIDFromContext returns the trace id stored under [TraceIDCtxKey].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

// GetCallerFromContext returns the authenticated caller stored under
// [CallerCtxKey].
func GetCallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(string)
	return caller, ok && caller != ""
}
