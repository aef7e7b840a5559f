package fuzzy

import "errors"

// Aggregation errors.
var (
	ErrEmptySet = errors.New("fuzzy number set is empty")
)

// Parse errors.
var (
	ErrInvalidFormat    = errors.New("invalid fuzzy number format")
	ErrInvalidComponent = errors.New("invalid fuzzy number component")
)
