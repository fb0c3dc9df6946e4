// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings written into
// the "message" field of response envelopes by the HTTP handlers.
package app

const (
	// MsgConfigInfoRetrieved accompanies the /api/config/info payload.
	MsgConfigInfoRetrieved = "Configuration information retrieved successfully"

	// MsgApplicationHealthy accompanies the /api/config/health payload.
	MsgApplicationHealthy = "Application is healthy"

	// MsgRESTClientTestSucceeded is returned when the external API answered
	// the test request.
	MsgRESTClientTestSucceeded = "REST client test completed successfully"

	// MsgRESTClientTestFailed is returned when the external API call failed
	// for any reason, including a missing base URL.
	MsgRESTClientTestFailed = "REST client test failed"

	// MsgOrderFound accompanies a ledger record returned by order lookup.
	MsgOrderFound = "Order retrieved successfully"
)
