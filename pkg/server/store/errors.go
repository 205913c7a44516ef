package store

import "errors"

// Sentinel errors returned by store implementations. Handlers map these to
// HTTP status codes with errors.Is, so implementations wrap them with
// fmt.Errorf("%w: ...") to add detail.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput means a create or update was rejected because a
	// required field is missing or a value is malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("record already exists")
)
