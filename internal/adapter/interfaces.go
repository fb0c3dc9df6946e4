// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter translates gateway requests into calls to third-party
// delivery providers.
//
// The primary abstraction is [DeliveryProvider]. The package ships the
// Lalamove implementation ([NewLalamoveAdapter]), which signs every request
// with the provider's HMAC scheme and dispatches it through a
// [restclient.Dispatcher].
//
// Provider failures surface as *restclient.ResponseError values, so callers
// use errors.Is with the restclient category sentinels.
package adapter

import (
	"context"

	"github.com/Chakshu1409/fnp-integrations/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/delivery_provider_mock.go -package=mock

// DeliveryProvider defines the operations of a delivery provider. The
// request and response bodies follow the provider wire contract and are
// passed through unchanged.
type DeliveryProvider interface {
	// Name identifies the provider in logs and ledger records.
	Name() string

	// GetQuotation asks the provider to price a delivery. The returned
	// quotation carries the stop IDs needed by PlaceOrder.
	GetQuotation(ctx context.Context, req models.DeliveryRequestWrapper) (*models.QuotationResponse, error)

	// PlaceOrder books a delivery against a quotation obtained earlier.
	PlaceOrder(ctx context.Context, req models.OrderRequestWrapper) (*models.OrderResponse, error)
}
