// Package http implements the inbound REST surface of the gateway.
//
// Provider operations are exposed under /api/lalamove and return the
// provider's response as-is; gateway-owned endpoints under /api/config and
// every error are rendered as a models.ResponseEnvelope. Tracing, access
// logging, compression and optional bearer-token authentication are applied
// as chi middleware before requests reach the service layer.
package http
