// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
)

// MaxAttempts bounds the number of transport calls made for one dispatch.
const MaxAttempts = 2

// Dispatcher executes outbound JSON calls with a single retry on
// authorization failure and a fail-fast policy chosen per call.
//
// It holds no per-call state and is safe for concurrent use.
type Dispatcher struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewDispatcher returns a Dispatcher sending through client. The logger is
// used when the call context carries none.
func NewDispatcher(client *utils.HTTPClient, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{client: client, logger: log}
}

// Execute dispatches req and decodes a successful response into a new T.
//
// It returns (nil, nil) when the upstream answered with an empty or null
// body, or when the call failed and opts.FailFast is false.
func Execute[T any](ctx context.Context, d *Dispatcher, req Request, opts Options) (*T, error) {
	out := new(T)
	found, err := d.Do(ctx, req, opts, out)
	if err != nil || !found {
		return nil, err
	}
	return out, nil
}

// Do dispatches req and decodes a successful response into out (which may be
// nil to discard the body). found is false for an empty or null body and for
// failures swallowed because opts.FailFast is false.
//
// Errors are a *ResponseError (only when FailFast) or one of ErrEncode,
// ErrAuthorize and ErrDecode.
func (d *Dispatcher) Do(ctx context.Context, req Request, opts Options, out any) (bool, error) {
	log := logger.FromContextOr(ctx, d.logger)

	body, err := EncodeBody(req.Body)
	if err != nil {
		return false, err
	}

	attempts := 1
	if opts.AllowRetry {
		attempts = MaxAttempts
	}

	method := req.method()
	host := HostOf(req.URL)
	headers := normalizeHeaders(req.Headers)

	var failure *ResponseError
	for attempt := 1; attempt <= attempts; attempt++ {
		attemptHeaders := headers
		if req.Authorize != nil {
			extra, err := req.Authorize(method, req.URL, body)
			if err != nil {
				return false, fmt.Errorf("%w: %w", ErrAuthorize, err)
			}
			attemptHeaders = NewHeaderBuilder().Merge(headers).Merge(extra).Build()
		}

		log.Debug().
			Str("operation", req.operation()).
			Int("attempt", attempt).
			Str("method", method).
			Str("url", req.URL).
			Interface("headers", redacted(attemptHeaders)).
			Bytes("payload", body).
			Msg("dispatching request")

		start := time.Now()
		status, respBody, transportErr := d.send(ctx, method, req.URL, attemptHeaders, body)
		elapsed := time.Since(start)

		if transportErr == nil && status >= http.StatusOK && status < http.StatusMultipleChoices {
			log.Info().
				Str("operation", req.operation()).
				Int("attempt", attempt).
				Int("status", status).
				Dur("elapsed", elapsed).
				Bytes("response", respBody).
				Msg("request completed")

			return decode(respBody, out)
		}

		if transportErr != nil {
			failure = classifyTransport(transportErr, host)
		} else {
			failure = Classify(status, string(respBody), host)
		}

		log.Warn().
			Err(transportErr).
			Str("operation", req.operation()).
			Int("attempt", attempt).
			Int("status", status).
			Dur("elapsed", elapsed).
			Bytes("response", respBody).
			Str("category", failure.Category.String()).
			Msg("request failed")

		if attempt < attempts && isAuthFailure(status, transportErr) {
			log.Info().
				Str("operation", req.operation()).
				Msg("authorization failure, retrying once")
			continue
		}
		break
	}

	if opts.FailFast {
		return false, failure
	}

	log.Debug().
		Str("operation", req.operation()).
		Str("category", failure.Category.String()).
		Msg("failure suppressed, returning empty result")
	return false, nil
}

// send performs one transport call. A non-2xx status is not an error here.
func (d *Dispatcher) send(ctx context.Context, method, rawURL string, headers Headers, body []byte) (int, []byte, error) {
	r := d.client.R().SetContext(ctx)
	for _, name := range headers.Keys() {
		r.SetHeaderVerbatim(name, headers.Get(name))
	}
	if body != nil {
		r.SetBody(body)
	}

	resp, err := r.Execute(method, rawURL)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode(), resp.Body(), nil
}

func decode(body []byte, out any) (bool, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return true, nil
}

// Get dispatches a GET to rawURL.
func (d *Dispatcher) Get(ctx context.Context, rawURL string, headers Headers, out any, opts Options) (bool, error) {
	return d.Do(ctx, Request{Method: http.MethodGet, URL: rawURL, Headers: headers}, opts, out)
}

// Post dispatches a POST of body to rawURL.
func (d *Dispatcher) Post(ctx context.Context, rawURL string, headers Headers, body, out any, opts Options) (bool, error) {
	return d.Do(ctx, Request{Method: http.MethodPost, URL: rawURL, Headers: headers, Body: body}, opts, out)
}

// Put dispatches a PUT of body to rawURL.
func (d *Dispatcher) Put(ctx context.Context, rawURL string, headers Headers, body, out any, opts Options) (bool, error) {
	return d.Do(ctx, Request{Method: http.MethodPut, URL: rawURL, Headers: headers, Body: body}, opts, out)
}

// Delete dispatches a DELETE to rawURL.
func (d *Dispatcher) Delete(ctx context.Context, rawURL string, headers Headers, out any, opts Options) (bool, error) {
	return d.Do(ctx, Request{Method: http.MethodDelete, URL: rawURL, Headers: headers}, opts, out)
}
