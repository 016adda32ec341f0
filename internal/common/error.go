// Package common defines shared constants and sentinel errors used across
// client and server layers of Edvora. Callers should use errors.Is / errors.As
// to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (absent, invalid or malformed token).
	ErrTokenMissing = errors.New("access token required")
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError carries a message that is safe to show to API clients.
// It matches ErrorValidation.
type ValidationError struct {
	Message string
}

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrorValidation }

// DuplicateFieldError reports a uniqueness violation on a named user field
// (username, email or studentId). It matches ErrorAlreadyExists.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string { return e.Field + " already exists" }

func (e *DuplicateFieldError) Is(target error) bool { return target == ErrorAlreadyExists }
