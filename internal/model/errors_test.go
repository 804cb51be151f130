package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("duplicate key")

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{name: "validation", err: NewErrValidation(map[string]string{"email": "invalid"}), kind: ErrValidation},
		{name: "conflict", err: NewErrConflict("email", cause), kind: ErrConflict},
		{name: "unauthorized", err: NewErrUnauthorized(), kind: ErrUnauthorized},
		{name: "not found", err: NewErrNotFound("product", nil), kind: ErrNotFound},
		{name: "internal", err: NewErrInternal(cause), kind: ErrInternal},
		{name: "wrapped", err: fmt.Errorf("failed to purchase: %w", NewErrNotFound("user", nil)), kind: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
		})
	}
}

func TestError_KeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := NewErrConflict("email", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "email is already taken", err.Public())
	assert.Equal(t, "email is already taken: duplicate key", err.Error())
}

func TestError_InternalHidesCause(t *testing.T) {
	err := NewErrInternal(errors.New("connection refused"))

	var domainErr *Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "internal server error", domainErr.Public())
}

func TestNewErrValidation_Message(t *testing.T) {
	err := NewErrValidation(map[string]string{"password": "too short", "email": "invalid"})

	assert.Equal(t, "validation failed: email: invalid; password: too short", err.Public())
	assert.Equal(t, "too short", err.Fields["password"])
}
