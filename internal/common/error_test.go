package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("register: %w", NewValidationError("password must be at least %d characters", 6))

	assert.ErrorIs(t, err, ErrorValidation)
	assert.Equal(t, "register: password must be at least 6 characters", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "password must be at least 6 characters", ve.Message)
}

func TestDuplicateFieldError_NamesField(t *testing.T) {
	err := fmt.Errorf("create user: %w", &DuplicateFieldError{Field: "email"})

	assert.ErrorIs(t, err, ErrorAlreadyExists)
	assert.NotErrorIs(t, err, ErrorValidation)

	var de *DuplicateFieldError
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "email", de.Field)
	assert.Equal(t, "email already exists", de.Error())
}
