package catalogue

import "errors"

// Ingest-time sentinel errors. Query-time lookups never return an error —
// absence is communicated through a boolean/ok return instead, per
// spec.md §4.2's "query-time lookups never throw, they return absent".
var (
	// ErrDuplicateStop is returned by AddStop when a stop with the same
	// name was already added. The reference design rejects duplicates
	// rather than silently replacing them (spec.md §4.2, §9).
	ErrDuplicateStop = errors.New("catalogue: duplicate stop name")

	// ErrDuplicateBus is returned by AddBus for the same reason.
	ErrDuplicateBus = errors.New("catalogue: duplicate bus name")

	// ErrEmptyName is returned when a stop or bus name is empty.
	ErrEmptyName = errors.New("catalogue: name must not be empty")

	// ErrUnknownStop is returned by SetDistance when either endpoint has
	// not been added yet.
	ErrUnknownStop = errors.New("catalogue: unknown stop")

	// ErrInvalidDistance is returned by SetDistance for non-positive
	// metre values.
	ErrInvalidDistance = errors.New("catalogue: distance must be a positive integer")
)
