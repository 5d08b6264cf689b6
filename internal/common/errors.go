// Package common defines shared sentinel errors used across the portfolio
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// login validation errors
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidEmailFormat  = errors.New("invalid email format")
	ErrValidation          = errors.New("validation error")

	// auth errors (invalid, malformed or expired token)
	ErrInvalidToken = errors.New("invalid token")
)
