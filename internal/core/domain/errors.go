package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnrecognisedFeed indicates a document whose root is not the
	// expected export envelope. A per-document failure, never fatal.
	ErrUnrecognisedFeed = errors.New("unrecognised feed envelope")

	// ErrNoDocuments indicates the input folder contained no export files.
	ErrNoDocuments = errors.New("no export documents found")

	// ErrAggregateFinalized indicates an offer after the aggregate was
	// drained for output.
	ErrAggregateFinalized = errors.New("aggregate already finalized")
)
