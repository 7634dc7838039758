package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrUnknownDriver is returned when the configured database driver is not supported.
	ErrUnknownDriver = errors.New("unknown database driver")
)
