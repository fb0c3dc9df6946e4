// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package restclient

import (
	"errors"
	"net/http"
)

// Category sentinels. A *ResponseError unwraps to exactly one of them.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("microservice authorization error")
	ErrNotFound     = errors.New("microservice resource not found")
	ErrRateLimited  = errors.New("rate limit exceeded")
	ErrExchange     = errors.New("microservice exchange error")
	ErrInternal     = errors.New("microservice internal error")
)

// Fatal dispatch errors. They are never retried and are returned even when
// FailFast is off.
var (
	// ErrEncode is returned when the request body cannot be serialized.
	ErrEncode = errors.New("error encoding request body")
	// ErrDecode is returned when a successful response body does not match
	// the expected shape.
	ErrDecode = errors.New("error decoding response body")
	// ErrAuthorize is returned when the per-attempt authorization hook fails.
	ErrAuthorize = errors.New("error authorizing request")
)

// Category classifies a failed outbound call.
type Category int

const (
	CategoryBadRequest Category = iota + 1
	CategoryUnauthorized
	CategoryNotFound
	CategoryRateLimited
	CategoryExchangeError
	CategoryInternalError
)

type categoryInfo struct {
	name           string
	errorCode      string
	code           int
	defaultMessage string
	sentinel       error
}

var categories = map[Category]categoryInfo{
	CategoryBadRequest:    {"BadRequest", "BAD_REQUEST", http.StatusBadRequest, "Bad Request", ErrBadRequest},
	CategoryUnauthorized:  {"Unauthorized", "MICROSERVICE_AUTHORIZATION_ERROR", http.StatusUnauthorized, "Microservice Authorization Error", ErrUnauthorized},
	CategoryNotFound:      {"NotFound", "MICROSERVICE_RESOURCE_NOT_FOUND", http.StatusNotFound, "Microservice Resource Not Found", ErrNotFound},
	CategoryRateLimited:   {"RateLimited", "RATE_LIMIT_EXCEEDED", http.StatusTooManyRequests, "Rate Limit Exceeded", ErrRateLimited},
	CategoryExchangeError: {"ExchangeError", "MICROSERVICE_EXCHANGE_ERROR", http.StatusBadGateway, "Microservice Exchange Error", ErrExchange},
	CategoryInternalError: {"InternalError", "MICROSERVICE_INTERNAL_ERROR", http.StatusInternalServerError, "Microservice Internal Error", ErrInternal},
}

func (c Category) info() categoryInfo {
	if info, ok := categories[c]; ok {
		return info
	}
	return categories[CategoryInternalError]
}

// String returns the category name, e.g. "RateLimited".
func (c Category) String() string { return c.info().name }

// Code returns the numeric code of the category. It doubles as the HTTP
// status used when the error is rendered to an inbound caller.
func (c Category) Code() int { return c.info().code }

// ErrorCode returns the symbolic code placed in error envelopes,
// e.g. "RATE_LIMIT_EXCEEDED".
func (c Category) ErrorCode() string { return c.info().errorCode }

// DefaultMessage is used when the upstream gave no message.
func (c Category) DefaultMessage() string { return c.info().defaultMessage }

// ResponseError is a classified outbound failure.
type ResponseError struct {
	Category Category
	// Code is the numeric code of Category.
	Code int
	// Message is the upstream message (or the category default) followed by
	// " HOST: {host}" when the host is known.
	Message string
	// Host of the called URL, empty when it could not be resolved.
	Host string
	// HTTPStatus is the upstream status, zero for transport failures.
	HTTPStatus int

	cause error
}

func (e *ResponseError) Error() string {
	return e.Message
}

// Unwrap exposes the category sentinel and, for transport failures, the
// underlying cause.
func (e *ResponseError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Category.info().sentinel, e.cause}
	}
	return []error{e.Category.info().sentinel}
}

// AsResponseError reports whether err carries a *ResponseError.
func AsResponseError(err error) (*ResponseError, bool) {
	var re *ResponseError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
