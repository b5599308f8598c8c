package data

import "errors"

// Errors returned while loading datasets.
var (
	// ErrResource is returned when a dataset file cannot be opened or read.
	ErrResource = errors.New("data: resource unavailable")

	// ErrMalformed is returned when dataset bytes do not follow the expected
	// format.
	ErrMalformed = errors.New("data: malformed input")
)
