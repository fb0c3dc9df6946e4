// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/http"
	"time"
)

// Envelope statuses.
const (
	EnvelopeStatusSuccess = "SUCCESS"
	EnvelopeStatusError   = "ERROR"
)

// DefaultSuccessMessage is used by [Success].
const DefaultSuccessMessage = "Operation completed successfully"

// ResponseEnvelope is the uniform JSON wrapper of gateway-owned endpoints and
// of every error rendered by the gateway.
type ResponseEnvelope struct {
	Status       string         `json:"status"`
	StatusCode   int            `json:"statusCode"`
	ErrorCode    int            `json:"errorCode,omitempty"`
	Message      string         `json:"message"`
	Response     any            `json:"response,omitempty"`
	ResponseData map[string]any `json:"responseData,omitempty"`
}

// Success wraps response with the default message.
func Success(response any) ResponseEnvelope {
	return SuccessWithMessage(DefaultSuccessMessage, response)
}

// SuccessWithMessage wraps response with message and status 200.
func SuccessWithMessage(message string, response any) ResponseEnvelope {
	return ResponseEnvelope{
		Status:     EnvelopeStatusSuccess,
		StatusCode: http.StatusOK,
		Message:    message,
		Response:   response,
	}
}

// Error builds an error envelope. data is merged over the standard
// {timestamp, path} error data.
func Error(statusCode, errorCode int, message, path string, data map[string]any) ResponseEnvelope {
	responseData := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"path":      path,
	}
	for k, v := range data {
		responseData[k] = v
	}

	return ResponseEnvelope{
		Status:       EnvelopeStatusError,
		StatusCode:   statusCode,
		ErrorCode:    errorCode,
		Message:      message,
		ResponseData: responseData,
	}
}
