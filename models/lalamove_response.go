// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// QuotationResponse is the provider answer to a quotation request.
type QuotationResponse struct {
	Data *QuotationData `json:"data"`
}

type QuotationData struct {
	QuotationID      string          `json:"quotationId"`
	ScheduleAt       string          `json:"scheduleAt,omitempty"`
	ExpiresAt        string          `json:"expiresAt,omitempty"`
	ServiceType      string          `json:"serviceType,omitempty"`
	Language         string          `json:"language,omitempty"`
	Stops            []QuotationStop `json:"stops,omitempty"`
	IsRouteOptimized bool            `json:"isRouteOptimized"`
	PriceBreakdown   *PriceBreakdown `json:"priceBreakdown,omitempty"`
	Distance         *Distance       `json:"distance,omitempty"`
}

// QuotationStop carries the stopId later referenced by an order.
type QuotationStop struct {
	StopID      string       `json:"stopId"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Address     string       `json:"address,omitempty"`
}

// PriceBreakdown amounts are decimal strings in Currency.
type PriceBreakdown struct {
	Base                    string `json:"base,omitempty"`
	ExtraMileage            string `json:"extraMileage,omitempty"`
	Surcharge               string `json:"surcharge,omitempty"`
	TotalBeforeOptimization string `json:"totalBeforeOptimization,omitempty"`
	TotalExcludePriorityFee string `json:"totalExcludePriorityFee,omitempty"`
	Total                   string `json:"total,omitempty"`
	Currency                string `json:"currency,omitempty"`
}

type Distance struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// OrderResponse is the provider answer to an order placement.
type OrderResponse struct {
	Data *OrderData `json:"data"`
}

type OrderData struct {
	OrderID        string          `json:"orderId"`
	QuotationID    string          `json:"quotationId"`
	PriceBreakdown *PriceBreakdown `json:"priceBreakdown,omitempty"`
	DriverID       string          `json:"driverId,omitempty"`
	ShareLink      string          `json:"shareLink,omitempty"`
	Status         string          `json:"status,omitempty"`
	Distance       *Distance       `json:"distance,omitempty"`
	Stops          []OrderStop     `json:"stops,omitempty"`
	Metadata       *OrderMetadata  `json:"metadata,omitempty"`
	Partner        string          `json:"partner,omitempty"`
}

// OrderStop uses the provider's snake_case and upper-case keys for the
// delivery code and proof of delivery.
type OrderStop struct {
	Coordinates  *Coordinates  `json:"coordinates,omitempty"`
	Address      string        `json:"address,omitempty"`
	Name         string        `json:"name,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	DeliveryCode *DeliveryCode `json:"delivery_code,omitempty"`
	POD          *POD          `json:"POD,omitempty"`
}

type DeliveryCode struct {
	Value  string `json:"value"`
	Status string `json:"status"`
}

// POD is the proof-of-delivery state of a stop.
type POD struct {
	Status string `json:"status"`
}
