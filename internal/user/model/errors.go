package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidIdentity indicates that the external identity is unusable (e.g., empty subject).
	ErrInvalidIdentity = errors.New("invalid identity")
)
