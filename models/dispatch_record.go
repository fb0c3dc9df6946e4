// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DispatchKind tells which provider operation produced a record.
type DispatchKind string

const (
	DispatchKindQuotation DispatchKind = "quotation"
	DispatchKindOrder     DispatchKind = "order"
)

// DispatchRecord is a ledger entry of a successful provider call.
type DispatchRecord struct {
	ID int64 `json:"id"`
	// TraceID correlates the record with the inbound request logs.
	TraceID  string       `json:"trace_id"`
	Provider string       `json:"provider"`
	Kind     DispatchKind `json:"kind"`
	// ExternalID is the quotationId or orderId assigned by the provider.
	ExternalID  string `json:"external_id"`
	QuotationID string `json:"quotation_id,omitempty"`
	Status      string `json:"status,omitempty"`
	// Total and Currency come from the price breakdown when present.
	Total     string    `json:"total,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	ShareLink string    `json:"share_link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
