package toppings

import "errors"

var (
	// ErrInvalidInput is returned when no pizza list is supplied at all.
	ErrInvalidInput = errors.New("pizza list must not be null")
	// ErrInvalidLimit is returned when the requested number of groups is below one.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
