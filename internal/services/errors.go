package services

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a uniqueness constraint would be violated.
	ErrConflict = errors.New("already exists")
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned on a password or token mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotConfigured is returned when a required server setting is unset.
	ErrNotConfigured = errors.New("not configured")
	// ErrUpstream is returned when a third-party provider call fails.
	ErrUpstream = errors.New("upstream failure")
)
