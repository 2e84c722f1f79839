package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorInvalidEmail      = errors.New("invalid email address")
	ErrorUsernameTooShort  = errors.New("username must be at least 3 characters")
	ErrorPasswordsMismatch = errors.New("passwords do not match")
	ErrorEmptyPassword     = errors.New("password must not be empty")
	ErrorInvalidThemeMode  = errors.New("invalid theme mode")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
