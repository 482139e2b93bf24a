package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreErrorKinds(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  *StoreError
		kind ErrorKind
		is   error
	}{
		{"validation", NewValidationError("setup", "is required"), KindValidation, ErrInvalidInput},
		{"not found", NewNotFoundError("joke"), KindNotFound, ErrNotFound},
		{"unavailable", NewUnavailableError(cause), KindConnectivity, ErrStoreUnavailable},
		{"query", NewStoreError("find", cause), KindStore, ErrStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind())
			assert.ErrorIs(t, tt.err, tt.is)
		})
	}
}

func TestStoreErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewStoreError("insert", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store error: insert failed", err.Error())
}

func TestStoreErrorMessage(t *testing.T) {
	err := NewValidationError("type", "is required")
	assert.Equal(t, "invalid input: is required (field: type)", err.Error())
	assert.True(t, IsValidationError(err))
	assert.False(t, IsNotFound(err))
}

func TestAsStoreError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NewNotFoundError("joke"))
	se := AsStoreError(wrapped)
	require.NotNil(t, se)
	assert.Equal(t, KindNotFound, se.Kind())

	plain := AsStoreError(errors.New("raw driver error"))
	assert.Equal(t, KindStore, plain.Kind())
	assert.True(t, IsUnavailable(NewUnavailableError(nil)))
}
