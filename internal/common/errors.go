// Package common defines shared constants and sentinel errors used across
// the VibeLook client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrNotAuthenticated means no usable session (token + user id) exists
	// locally. Callers short-circuit to the login flow instead of fetching.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound means the referenced entity is absent from the local
	// collection or the backend.
	ErrNotFound = errors.New("not found")

	// ErrInvalidToken means the access token is malformed or carries no
	// usable subject claim.
	ErrInvalidToken = errors.New("invalid token")
)
