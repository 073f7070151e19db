// Copyright (c) 2026 The BGList Authors. All rights reserved.

/*
Package apperr defines the centralized error handling framework for BGList.

It provides a rich error type that bridges the gap between low-level domain and
storage errors and the problem-details responses the API emits.

Architecture:

  - AppError: A struct carrying a machine-readable code, a client-safe detail
    message, and the HTTP status it maps to.
  - Field errors: Per-field validation failures attached to 400 responses.
  - Mapping: The respond package renders an AppError as an RFC 7231-style
    problem-details document.

Every error that leaves the service layer should be wrapped as an [AppError] to
ensure consistent API responses.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the BGList API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// detail message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string `json:"code"`
	// Detail is a human-readable description safe to return to the client.
	Detail string `json:"detail"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Fields holds per-field validation errors for VALIDATION_ERROR responses.
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe detail.
func (e *AppError) Error() string { return e.Detail }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Detail:     resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(detail string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Detail:     detail,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(detail string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Detail:     detail,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(detail string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Detail:     detail,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(detail string, fields ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Detail:     "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
