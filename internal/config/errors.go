package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// listen address is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLalamoveConfigs indicates missing provider hostname or
	// credentials.
	ErrInvalidLalamoveConfigs = errors.New("invalid lalamove configuration")
	// ErrInvalidSecurityConfigs indicates that authentication is enabled
	// without a token sign key or issuer.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidDispatcherConfigs indicates negative pool sizes or timeouts.
	ErrInvalidDispatcherConfigs = errors.New("invalid dispatcher configuration")
)
