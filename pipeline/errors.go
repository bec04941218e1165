package pipeline

import "errors"

var (
	// ErrCatalogRequired is returned when no catalog is given.
	ErrCatalogRequired = errors.New("catalog required")
	// ErrNoQueries is returned when the configuration lists no queries.
	ErrNoQueries = errors.New("no queries configured")
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("invalid pipeline config")
)
