package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid token settings
	// (for example, missing sign key, zero token duration or a non-HMAC
	// signing algorithm).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidDashboardConfigs indicates a negative tax rate or delivery charge.
	ErrInvalidDashboardConfigs = errors.New("invalid dashboard configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSessionConfigs indicates an empty cookie name or zero TTL.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN or Redis address.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a negative cleanup interval or a
	// missing retention while cleanup is enabled.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
