// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound delivery payloads before they are
// signed and dispatched to a provider.
//
// A Validator inspects a value and optionally restricts itself to a subset
// of named fields. Services wrap their inner implementation with a
// validator so that transport handlers never see malformed payloads reach
// the provider.
package validators

import "context"

// Validator validates an arbitrary payload. When fields are given, only
// those named checks run.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
