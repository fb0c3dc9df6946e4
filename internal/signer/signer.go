// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package signer implements the HMAC request signing scheme required by the
// Lalamove delivery API.
//
// A signature covers the canonical string
//
//	timestamp + "\r\n" + method + "\r\n" + path + "\r\n\r\n" + body
//
// keyed with the application secret and rendered as lowercase hex. The
// resulting Authorization header has the form
//
//	hmac {appKey}:{timestamp}:{digest}
//
// Every function is pure. A signature must be computed per request since the
// timestamp is part of the signed payload.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// AuthScheme prefixes the Authorization header value.
const AuthScheme = "hmac"

// Input is the signed request material.
type Input struct {
	// Timestamp in milliseconds since the Unix epoch.
	Timestamp int64
	// Method is the HTTP verb, e.g. "POST".
	Method string
	// Path is the request path without host or query, e.g. "/v3/quotations".
	Path string
	// Body is the exact JSON sent on the wire. Empty for bodyless calls.
	Body string
}

// NewInput builds an Input stamped with t.
func NewInput(t time.Time, method, path string, body []byte) Input {
	return Input{
		Timestamp: t.UnixMilli(),
		Method:    method,
		Path:      path,
		Body:      string(body),
	}
}

// CanonicalString returns the byte sequence that is signed.
func CanonicalString(in Input) string {
	var b strings.Builder
	b.Grow(len(in.Method) + len(in.Path) + len(in.Body) + 24)

	b.WriteString(strconv.FormatInt(in.Timestamp, 10))
	b.WriteString("\r\n")
	b.WriteString(in.Method)
	b.WriteString("\r\n")
	b.WriteString(in.Path)
	b.WriteString("\r\n\r\n")
	b.WriteString(in.Body)

	return b.String()
}

// Sign computes the HMAC-SHA256 digest of the canonical string of in keyed
// with secret and returns it as 64 lowercase hex characters.
//
// It fails with ErrEmptySecret when secret is empty and with
// ErrMalformedInput when any component is not valid UTF-8.
func Sign(secret string, in Input) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	if !utf8.ValidString(secret) || !utf8.ValidString(in.Method) ||
		!utf8.ValidString(in.Path) || !utf8.ValidString(in.Body) {
		return "", ErrMalformedInput
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(CanonicalString(in)))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

// AuthorizationHeader renders "hmac {appKey}:{timestamp}:{digest}".
func AuthorizationHeader(appKey string, in Input, digest string) string {
	return AuthScheme + " " + appKey + ":" + strconv.FormatInt(in.Timestamp, 10) + ":" + digest
}

// Authorization signs in and renders the Authorization header value in one step.
func Authorization(appKey, secret string, in Input) (string, error) {
	digest, err := Sign(secret, in)
	if err != nil {
		return "", err
	}

	return AuthorizationHeader(appKey, in, digest), nil
}
