package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Caller input rejected before any network call.
	ErrValidation = errors.New("validation error")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)
