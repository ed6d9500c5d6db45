package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by update operations when the record id does
	// not exist. The collection is left untouched in that case.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned by login when no user matches the
	// supplied username/email and password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

// ValidationError carries the human-readable messages a validator produced
// for a rejected create. The messages are ordered the way the form presents
// its fields.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
