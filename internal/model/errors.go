package model

import "errors"

// Common errors used across the application
var (
	// ErrUserNotFound indicates no user record exists for the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreUnavailable indicates the persistent store could not be
	// reached or answered with a transport-level failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)
