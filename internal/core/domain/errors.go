package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateDocument indicates content with an identical
	// fingerprint is already stored. Recoverable and user-facing;
	// the caller decides whether to surface or skip it.
	ErrDuplicateDocument = errors.New("duplicate document")

	// ErrMalformedInput indicates input that cannot be ingested:
	// empty after normalization, or not valid UTF-8 text. Rejected
	// before any chunk is created.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidInput indicates malformed or invalid parameters.
	ErrInvalidInput = errors.New("invalid input")
)
