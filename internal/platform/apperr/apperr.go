// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the Phoenix client.

It provides a rich error type that bridges the gap between low-level transport or
storage failures and what the user (or the local gateway) finally sees.

Architecture:

  - AppError: A struct containing a machine-readable Code and a user-friendly message.
  - Remote: Failures reported by the blogging backend keep their HTTP status and
    the backend's own message, so callers can show it verbatim.
  - Network: Transport failures (DNS, refused connections, timeouts) are a single
    kind. The client does not distinguish a timeout from any other failure.

Every error that leaves the apiclient or a controller is an [AppError] so that the
CLI and the gateway can render it consistently.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the Phoenix client.
//
// # Security
//
// The Cause field is for logging only and is never rendered to the user.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "NETWORK_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to show to the user.
	Message string `json:"error"`
	// HTTPStatus is the status reported by the backend, or the one the gateway answers with.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the form field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the user-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Post") // Returns "Post not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Unauthenticated creates a 401 [AppError] for actions attempted without a session.
func Unauthenticated() *AppError {
	return &AppError{
		Code:       "UNAUTHENTICATED",
		Message:    "Please log in to continue",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Backend & Transport Errors

// Remote wraps a non-2xx answer from the blogging backend.
//
// The backend's own message is kept when present; otherwise a generic message
// derived from the status is used.
func Remote(status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
		if message == "" {
			message = "Request failed"
		}
	}

	return &AppError{
		Code:       codeForStatus(status),
		Message:    message,
		HTTPStatus: status,
	}
}

// Network creates an [AppError] for a request that never produced a response.
func Network(cause error) *AppError {
	return &AppError{
		Code:       "NETWORK_ERROR",
		Message:    "Unable to reach the server",
		HTTPStatus: http.StatusBadGateway,
		Cause:      cause,
	}
}

// CorruptState creates an [AppError] for a persisted value that cannot be read back.
//
// Callers treat it as "absent"; it exists so the condition can be logged.
func CorruptState(key string, cause error) *AppError {
	return &AppError{
		Code:       "CORRUPT_STATE",
		Message:    "Stored value for " + key + " is unreadable",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected error.
// The cause is stored for logging but is never shown to the user.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
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

// HasStatus reports whether err carries the given backend HTTP status.
func HasStatus(err error, status int) bool {
	ae := As(err)
	return ae != nil && ae.HTTPStatus == status
}

// MessageOr returns the backend-provided message of a remote failure, or the
// fallback for anything else (network errors, unexpected errors).
//
// Example:
//
//	apperr.MessageOr(err, "Failed to create post")
func MessageOr(err error, fallback string) string {
	ae := As(err)
	if ae == nil {
		return fallback
	}

	switch ae.Code {
	case "NETWORK_ERROR", "INTERNAL_ERROR", "CORRUPT_STATE":
		return fallback
	}

	if ae.Message == "" {
		return fallback
	}
	return ae.Message
}

// Surface converts err into what a screen shows: the backend's message when it
// sent one, fallback otherwise. Code, status, and cause are preserved.
func Surface(err error, fallback string) *AppError {
	if err == nil {
		return nil
	}

	out := &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    MessageOr(err, fallback),
		HTTPStatus: http.StatusInternalServerError,
		Cause:      err,
	}
	if ae := As(err); ae != nil {
		out.Code = ae.Code
		out.HTTPStatus = ae.HTTPStatus
		out.Details = ae.Details
	}
	return out
}

// codeForStatus maps a backend HTTP status onto a machine-readable code.
func codeForStatus(status int) string {
	switch {
	case status == http.StatusBadRequest:
		return "VALIDATION_ERROR"
	case status == http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case status == http.StatusForbidden:
		return "FORBIDDEN"
	case status == http.StatusNotFound:
		return "NOT_FOUND"
	case status == http.StatusConflict:
		return "CONFLICT"
	case status == http.StatusTooManyRequests:
		return "RATE_LIMITED"
	case status >= 500:
		return "UPSTREAM_ERROR"
	default:
		return "REQUEST_FAILED"
	}
}
