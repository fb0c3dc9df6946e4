// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package restclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// AuthorizeFunc computes per-attempt credentials. It receives the exact body
// bytes that will be transmitted (nil for bodyless calls) and returns headers
// merged over the request headers.
type AuthorizeFunc func(method, rawURL string, body []byte) (Headers, error)

// Request describes one outbound call. It is a value: build one per call.
type Request struct {
	// Operation names the caller in logs, e.g. "lalamove.GetQuotation".
	Operation string
	Method    string
	URL       string
	Headers   Headers
	// Body is encoded as JSON unless it is []byte or json.RawMessage, which
	// are sent verbatim. nil means no body.
	Body any
	// Authorize is optional.
	Authorize AuthorizeFunc
}

// Options select the failure policy of a dispatch.
type Options struct {
	// FailFast returns classified failures as errors. When false they are
	// swallowed and the dispatch reports an absent result.
	FailFast bool
	// AllowRetry permits one more attempt after an authorization failure.
	AllowRetry bool
}

// DefaultOptions returns FailFast and AllowRetry both enabled.
func DefaultOptions() Options {
	return Options{FailFast: true, AllowRetry: true}
}

// EncodeBody renders a request body the way the dispatcher transmits it.
// Signers use it so that signed and sent bytes are identical.
func EncodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (r Request) operation() string {
	if r.Operation != "" {
		return r.Operation
	}
	return r.Method + " " + HostOf(r.URL)
}

func (r Request) method() string {
	if r.Method == "" {
		return http.MethodGet
	}
	return r.Method
}
