package services

import "errors"

var (
	// ErrNotFound signals a missing entity; handlers map it to 404.
	ErrNotFound = errors.New("not found")

	// Login failures are deliberately distinct: a missing (email, role) pair
	// is not the same error as a bad password.
	ErrUserNotFound      = errors.New("user doesn't exist")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// ValidationError marks missing or malformed input; handlers map it to 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
