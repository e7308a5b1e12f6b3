package repositories

import "errors"

// Sentinel errors shared by the repositories. Controllers translate these
// into HTTP responses; nothing below this layer knows about status codes.
var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("repositories: not found")

	// ErrInvalidID is returned when a resource identifier is not a valid
	// ObjectID hex string.
	ErrInvalidID = errors.New("repositories: invalid id")

	// ErrDuplicate is returned when an insert collides with a unique index
	// (email or mobile already registered).
	ErrDuplicate = errors.New("repositories: duplicate")
)
