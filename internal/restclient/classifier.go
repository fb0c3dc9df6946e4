// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package restclient

import (
	"net/http"
	"net/url"
	"strings"
)

// Classify maps an outbound failure to its category.
//
// status is the upstream HTTP status; zero means the call never produced a
// response (network error, timeout). serverMessage is the raw response text
// and replaces the category default when non-blank. host is appended as
// " HOST: {host}" when non-empty.
func Classify(status int, serverMessage, host string) *ResponseError {
	category := categoryOf(status)

	message := strings.TrimSpace(serverMessage)
	if message == "" {
		message = category.DefaultMessage()
	}
	if host != "" {
		message += " HOST: " + host
	}

	return &ResponseError{
		Category:   category,
		Code:       category.Code(),
		Message:    message,
		Host:       host,
		HTTPStatus: status,
	}
}

func categoryOf(status int) Category {
	switch {
	case status <= 0:
		return CategoryInternalError
	case status == http.StatusBadRequest:
		return CategoryBadRequest
	case status == http.StatusUnauthorized:
		return CategoryUnauthorized
	case status == http.StatusNotFound:
		return CategoryNotFound
	case status == http.StatusTooManyRequests:
		return CategoryRateLimited
	default:
		return CategoryExchangeError
	}
}

// classifyTransport classifies a call that failed without a response.
func classifyTransport(cause error, host string) *ResponseError {
	re := Classify(0, "", host)
	re.cause = cause
	return re
}

// HostOf returns the host name of rawURL without port, or "" when rawURL
// cannot be parsed.
func HostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// isAuthFailure reports whether a failed attempt may be retried. A 401 status
// is authoritative. Without a status the error text is checked for
// "unauthorized" as a fallback.
func isAuthFailure(status int, transportErr error) bool {
	if status == http.StatusUnauthorized {
		return true
	}
	if status == 0 && transportErr != nil {
		return strings.Contains(strings.ToLower(transportErr.Error()), "unauthorized")
	}
	return false
}
