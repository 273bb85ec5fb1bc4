package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering an email that is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when registering an empty or malformed email.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrEmptyPassword is returned when registering without a password.
	ErrEmptyPassword = errors.New("password must not be empty")
)
