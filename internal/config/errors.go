package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration. Package-level
// sentinel errors let callers use errors.Is() for programmatic handling
// while keeping human-readable messages.
var (
	// ErrNoProjectRoot is returned when no project directory is specified.
	ErrNoProjectRoot = errors.New("no project root specified")

	// ErrInvalidQuality is returned when the compression quality is
	// outside the 0-100 range.
	ErrInvalidQuality = errors.New("invalid compression quality: must be between 0 and 100")

	// ErrNoAssetTypes is returned when the asset extension allow-list is
	// empty. An empty list would declare nothing and scan nothing.
	ErrNoAssetTypes = errors.New("no asset types configured")

	// ErrInvalidIgnorePattern is returned when an ignore pattern is not a
	// valid regular expression.
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern: must be a valid regular expression")
)
