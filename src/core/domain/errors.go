// Package domain contains domain entities, value objects, and domain-specific errors.
// This package should have no external dependencies except the standard library.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when a record or identifier fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable is returned when the document store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStore is returned when a query fails for any other reason.
	ErrStore = errors.New("store error")
)

// ErrorKind names a class of StoreError as it is reported to clients.
type ErrorKind string

const (
	KindValidation   ErrorKind = "ValidationError"
	KindConnectivity ErrorKind = "StoreConnectivityError"
	KindNotFound     ErrorKind = "NotFoundError"
	KindStore        ErrorKind = "StoreError"
)

// StoreError is the only error type that crosses the data access boundary.
// Err keeps the underlying driver error for logs; it is never serialized.
type StoreError struct {
	// Base is the underlying error class (e.g., ErrInvalidInput)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string

	// Err is the wrapped cause, if any
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	msg := e.Base.Error()
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s (field: %s)", msg, e.Field)
	}
	return msg
}

// Unwrap exposes both the class and the cause to errors.Is/As.
func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Base}
	}
	return []error{e.Base, e.Err}
}

// Kind maps the error class to its reported name.
func (e *StoreError) Kind() ErrorKind {
	switch {
	case errors.Is(e.Base, ErrInvalidInput):
		return KindValidation
	case errors.Is(e.Base, ErrStoreUnavailable):
		return KindConnectivity
	case errors.Is(e.Base, ErrNotFound):
		return KindNotFound
	default:
		return KindStore
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *StoreError {
	return &StoreError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *StoreError {
	return &StoreError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewUnavailableError wraps a connectivity failure.
func NewUnavailableError(err error) *StoreError {
	return &StoreError{
		Base:    ErrStoreUnavailable,
		Message: "document store is unreachable",
		Err:     err,
	}
}

// NewStoreError wraps a failed query.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{
		Base:    ErrStore,
		Message: op + " failed",
		Err:     err,
	}
}

// AsStoreError returns err as a *StoreError, classifying unknown errors as
// generic store failures.
func AsStoreError(err error) *StoreError {
	var se *StoreError
	if errors.As(err, &se) {
		return se
	}
	return &StoreError{Base: ErrStore, Message: "unexpected failure", Err: err}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnavailable checks if an error is a store connectivity error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
