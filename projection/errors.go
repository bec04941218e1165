package projection

import "errors"

var (
	// ErrTooFewPoints is returned when fewer than two points are projected.
	ErrTooFewPoints = errors.New("projection needs at least two points")
	// ErrRaggedInput is returned when input rows differ in length.
	ErrRaggedInput = errors.New("input rows differ in length")
	// ErrInvalidOption is returned for out-of-range options.
	ErrInvalidOption = errors.New("invalid option")
)
