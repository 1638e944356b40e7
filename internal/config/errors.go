package config

import "errors"

// ErrParsingEnv wraps failures to convert environment variables into
// configuration values.
var ErrParsingEnv = errors.New("error parsing environment configuration")

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidInventoryConfigs indicates an unknown inventory source.
	ErrInvalidInventoryConfigs = errors.New("invalid inventory configuration")
	// ErrInvalidAuditConfigs indicates negative probe limits.
	ErrInvalidAuditConfigs = errors.New("invalid audit configuration")
)
