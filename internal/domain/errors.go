package domain

import "errors"

// Common validation errors.
var (
	// ErrEmptyEmail is returned when an account is created without an email.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptyPassword is returned when an account is created without a password.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
