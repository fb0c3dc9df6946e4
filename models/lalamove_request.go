// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeliveryRequestWrapper is the body of a quotation request. It is sent to
// the provider unchanged.
type DeliveryRequestWrapper struct {
	Data *DeliveryRequest `json:"data"`
}

// DeliveryRequest describes a delivery to be quoted.
type DeliveryRequest struct {
	// ScheduleAt is an RFC 3339 UTC time; empty means immediate pickup.
	ScheduleAt string `json:"scheduleAt,omitempty"`
	// ServiceType is the vehicle class, e.g. "MOTORCYCLE".
	ServiceType     string   `json:"serviceType"`
	SpecialRequests []string `json:"specialRequests,omitempty"`
	Language        string   `json:"language,omitempty"`
	// Stops lists the pickup first, then each drop-off.
	Stops            []DeliveryStop `json:"stops"`
	IsRouteOptimized bool           `json:"isRouteOptimized"`
}

// DeliveryStop is a stop of a quotation request.
type DeliveryStop struct {
	Coordinates *Coordinates `json:"coordinates"`
	Address     string       `json:"address"`
}

// Coordinates are decimal degrees rendered as strings, as the provider
// expects them.
type Coordinates struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// OrderRequestWrapper is the body of an order placement.
type OrderRequestWrapper struct {
	Data *OrderRequest `json:"data"`
}

// OrderRequest places an order against a previously obtained quotation.
type OrderRequest struct {
	QuotationID           string           `json:"quotationId"`
	Sender                *OrderSender     `json:"sender"`
	Recipients            []OrderRecipient `json:"recipients"`
	IsPODEnabled          bool             `json:"isPODEnabled"`
	IsRecipientSMSEnabled bool             `json:"isRecipientSMSEnabled"`
	Partner               string           `json:"partner,omitempty"`
	Metadata              *OrderMetadata   `json:"metadata,omitempty"`
}

// OrderSender references the pickup stop of the quotation.
type OrderSender struct {
	StopID string `json:"stopId"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
}

// OrderRecipient references a drop-off stop of the quotation.
type OrderRecipient struct {
	StopID  string `json:"stopId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Remarks string `json:"remarks,omitempty"`
}

// OrderMetadata is echoed back by the provider. The field names are fixed by
// the provider contract, including "restaurntName".
type OrderMetadata struct {
	MerchantID     string `json:"MerchantId,omitempty"`
	RestaurantName string `json:"restaurntName,omitempty"`
}
