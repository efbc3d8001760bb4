package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing or invalid token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates that the selected driver lacks its
	// connection settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownStorageDriver indicates a driver name other than mongo,
	// postgres or sqlite.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)
