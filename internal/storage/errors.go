package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced id has no entity behind it.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail means a user insert collided on the email unique key.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidState means the operation contradicts current entity state,
	// e.g. completing an already-completed task or touching a subtask through
	// the wrong capsule. No mutation is performed.
	ErrInvalidState = errors.New("invalid state")
)

func notFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}
