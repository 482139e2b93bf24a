// Package response defines the envelope every API response is wrapped in:
// {success, data, error?}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokesapi/src/core/domain"
)

// Envelope is the uniform response body.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the serialized form of a failure. Only these fields reach
// the client; the underlying driver error stays in the logs.
type ErrorBody struct {
	// Kind is a machine-readable error class (e.g., "ValidationError")
	Kind domain.ErrorKind `json:"kind"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// emptyData is what failed responses carry in data.
var emptyData = []any{}

// OK sends a 200 envelope with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created sends a 201 envelope with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Policy decides the status code of failed responses.
type Policy struct {
	// Typed maps error kinds to 400/404/503/500. When false every
	// failure is a 409.
	Typed bool
}

// Status returns the HTTP status for err under the policy.
func (p Policy) Status(err error) int {
	if !p.Typed {
		return http.StatusConflict
	}
	switch domain.AsStoreError(err).Kind() {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConnectivity:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Fail sends the failure envelope for err.
func (p Policy) Fail(c *gin.Context, err error, requestID string) {
	c.JSON(p.Status(err), Failure(err, requestID))
}

// Failure builds the failure envelope for err.
func Failure(err error, requestID string) Envelope {
	se := domain.AsStoreError(err)
	return Envelope{
		Success: false,
		Data:    emptyData,
		Error: &ErrorBody{
			Kind:      se.Kind(),
			Message:   se.Error(),
			Field:     se.Field,
			RequestID: requestID,
		},
	}
}

// NotFound sends a 404 envelope for an unknown route.
func NotFound(c *gin.Context, requestID string) {
	c.JSON(http.StatusNotFound, Envelope{
		Success: false,
		Data:    emptyData,
		Error: &ErrorBody{
			Kind:      domain.KindNotFound,
			Message:   "The requested resource was not found",
			RequestID: requestID,
		},
	})
}

// Internal is the envelope sent when a handler panics.
func Internal(requestID string) Envelope {
	return Envelope{
		Success: false,
		Data:    emptyData,
		Error: &ErrorBody{
			Kind:      domain.KindStore,
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		},
	}
}
