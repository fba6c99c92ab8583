package columnlens

import "errors"

// Common errors used throughout the columnlens package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")

	// ErrInputNotFound is returned when the dashboard export path does not
	// resolve to a readable file.
	ErrInputNotFound = errors.New("dashboard export file not found")

	// ErrInvalidDocument is returned when the dashboard export is not valid
	// JSON or lacks the expected dataset array.
	ErrInvalidDocument = errors.New("invalid dashboard export document")

	// ErrUnknownFormat is returned for an unrecognized output format name.
	ErrUnknownFormat = errors.New("unknown output format (expected sql, python, or both)")
)
