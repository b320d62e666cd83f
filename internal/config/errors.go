package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnknownBackend indicates that Storage.Backend is set to a value
	// other than "file" or "sqlite".
	ErrUnknownBackend = errors.New("unknown storage backend")
)
