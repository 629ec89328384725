package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, missing or unparsable API address, negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or an in-memory DSN that cannot keep the token).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown currency code).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidFeedConfigs indicates invalid feed settings
	// (for example, a non-positive page size).
	ErrInvalidFeedConfigs = errors.New("invalid feed configuration")
)
