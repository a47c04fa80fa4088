package user

import "errors"

// Errors returned by the user service. Handlers map these to HTTP
// statuses; everything else is treated as an internal failure.
var (
	ErrUsernameTaken   = errors.New("username already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidRole     = errors.New("role must be customer or worker")
	ErrMissingFields   = errors.New("username, email and password are required")
)
