package user

import "errors"

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a create collides with an existing email.
	ErrEmailTaken = errors.New("email already registered")
)
