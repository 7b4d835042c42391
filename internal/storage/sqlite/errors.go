package sqlite

import "errors"

var (
	// ErrEmptyKey indicates an empty key was passed to a write.
	ErrEmptyKey = errors.New("empty key")
	// ErrClosed indicates the database handle was already closed.
	ErrClosed = errors.New("sqlite store is closed")
)
