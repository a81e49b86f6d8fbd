package domain

import "errors"

// Failure taxonomy shared by the discovery services. Handlers branch
// on these with errors.Is; empty results are plain values, never errors.
var (
	// ErrNotFound: the referenced product or user does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation: malformed identifier or out-of-range caller input.
	ErrValidation = errors.New("invalid input")
)
