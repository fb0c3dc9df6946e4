// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package restclient

import (
	"maps"
	"net/http"
	"slices"
)

// MediaTypeJSON is the canonical media type of every dispatched call.
const MediaTypeJSON = "application/json"

// Header names set by the dispatcher.
const (
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
)

// Headers is an immutable set of request headers. Lookups are
// case-insensitive and each key holds a single value. Names are sent in
// canonical form unless written with [HeaderBuilder.SetVerbatim]. The zero
// value is empty.
type Headers struct {
	values map[string]header
}

type header struct {
	name  string
	value string
}

// Get returns the value for key, or "".
func (h Headers) Get(key string) string {
	return h.values[http.CanonicalHeaderKey(key)].value
}

// Keys returns the wire names in sorted order.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(h.values))
	for _, e := range h.values {
		keys = append(keys, e.name)
	}
	slices.Sort(keys)
	return keys
}

// Map returns a copy of the headers keyed by wire name.
func (h Headers) Map() map[string]string {
	out := make(map[string]string, len(h.values))
	for _, e := range h.values {
		out[e.name] = e.value
	}
	return out
}

// HeaderBuilder accumulates headers. Later writes to the same key replace
// earlier ones.
type HeaderBuilder struct {
	values map[string]header
}

func NewHeaderBuilder() *HeaderBuilder {
	return &HeaderBuilder{values: make(map[string]header)}
}

// Set stores value under key, replacing any previous value.
func (b *HeaderBuilder) Set(key, value string) *HeaderBuilder {
	k := http.CanonicalHeaderKey(key)
	b.values[k] = header{name: k, value: value}
	return b
}

// SetVerbatim is Set that keeps the exact casing of key on the wire, for
// providers documenting lowercase names such as "market".
func (b *HeaderBuilder) SetVerbatim(key, value string) *HeaderBuilder {
	b.values[http.CanonicalHeaderKey(key)] = header{name: key, value: value}
	return b
}

// SetDefault stores value only if key is not set yet.
func (b *HeaderBuilder) SetDefault(key, value string) *HeaderBuilder {
	k := http.CanonicalHeaderKey(key)
	if _, ok := b.values[k]; !ok {
		b.values[k] = header{name: k, value: value}
	}
	return b
}

// Merge copies every header of h into the builder.
func (b *HeaderBuilder) Merge(h Headers) *HeaderBuilder {
	maps.Copy(b.values, h.values)
	return b
}

// Build returns an immutable snapshot. The builder may be reused.
func (b *HeaderBuilder) Build() Headers {
	return Headers{values: maps.Clone(b.values)}
}

// normalizeHeaders merges caller headers into a fresh set and defaults
// Content-Type and Accept to JSON.
func normalizeHeaders(caller Headers) Headers {
	return NewHeaderBuilder().
		Merge(caller).
		SetDefault(HeaderContentType, MediaTypeJSON).
		SetDefault(HeaderAccept, MediaTypeJSON).
		Build()
}

var redactedHeaders = []string{HeaderAuthorization, "X-Api-Key"}

// redacted renders headers for logging, keyed by wire name, with
// credentials masked.
func redacted(h Headers) map[string]string {
	out := h.Map()
	for name := range out {
		if slices.Contains(redactedHeaders, http.CanonicalHeaderKey(name)) {
			out[name] = "[REDACTED]"
		}
	}
	return out
}
