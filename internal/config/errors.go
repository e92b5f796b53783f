package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or out-of-range bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCookieConfigs indicates invalid session cookie settings.
	ErrInvalidCookieConfigs = errors.New("invalid cookie configuration")
)
