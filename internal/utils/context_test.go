// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
	if CallerCtxKey.String() != "caller" {
		t.Errorf("expected 'caller', got '%s'", CallerCtxKey.String())
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, "abc")

	traceID, ok := GetTraceIDFromContext(ctx)

	if !ok || traceID != "abc" {
		t.Errorf("expected (abc, true), got (%q, %v)", traceID, ok)
	}
}

func TestGetTraceIDFromContext_Missing(t *testing.T) {
	if _, ok := GetTraceIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetTraceIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDCtxKey, 42)

	if _, ok := GetTraceIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetCallerFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), CallerCtxKey, "order-service")

	caller, ok := GetCallerFromContext(ctx)

	if !ok || caller != "order-service" {
		t.Errorf("expected (order-service, true), got (%q, %v)", caller, ok)
	}
	if _, ok = GetCallerFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
