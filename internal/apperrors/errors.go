package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated user may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidRange indicates a reporting date range where the end precedes the start.
var ErrInvalidRange = errors.New("invalid date range")

// ErrStorageUnavailable indicates the underlying store could not serve the query.
// Aggregation calls that hit this error return nothing; partial results are never produced.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrNoActiveTemplate indicates no active reminder template exists for a dunning tier.
var ErrNoActiveTemplate = errors.New("no active template for tier")

// ErrTemplate indicates a reminder template contained a placeholder that could not be resolved.
var ErrTemplate = errors.New("template rendering error")

// ErrTransport indicates the outbound email dispatch failed. Recorded, never retried in-run.
var ErrTransport = errors.New("email transport error")

// AppError carries an HTTP status code alongside a message and wrapped cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func NewInternalServerError(message string, err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: err}
}

func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}
