// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

/*
Package apperr defines the centralized error handling framework for Gallerim.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Kinds: The closed set of domain error codes (duplicates, in-use guards, publish gate).
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Kinds

// Domain error codes. These are part of the wire contract: the admin CMS
// frontend switches on them, so the strings are frozen.
const (
	KindFieldRequired          = "FIELD_REQUIRED"
	KindOutOfRange             = "OUT_OF_RANGE"
	KindNotExist               = "NOT_EXIST"
	KindNotFound               = "NOT_FOUND"
	KindDuplicateName          = "DUPLICATE_NAME"
	KindDuplicateTitle         = "DUPLICATE_TITLE"
	KindInUse                  = "IN_USE"
	KindAlreadyPublished       = "ALREADY_PUBLISHED"
	KindNotEnoughTranslations  = "NOT_ENOUGH_TRANSLATIONS"
	KindNoTranslationsProvided = "NO_TRANSLATIONS_PROVIDED"
)

// AppError is the canonical error type for the Gallerim API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and optional structured failure detail.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "IN_USE").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
	// Errors is the aggregated failure map produced by the publish gate and
	// bulk status changes. Keys are error kinds, values are
	// "<identifier>|<field>" strings, one per failed check. The pipe format is
	// frozen: the admin CMS relies on it to trace which artwork failed which rule.
	Errors map[string][]string `json:"errors,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// WithErrors attaches an aggregated failure map and returns the error.
func (e *AppError) WithErrors(errs map[string][]string) *AppError {
	e.Errors = errs
	return e
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Artwork") // Returns "Artwork not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       KindNotFound,
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

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// DuplicateName creates a 409 [AppError] for a per-language genre name collision.
func DuplicateName(lang, name string) *AppError {
	return &AppError{
		Code:       KindDuplicateName,
		Message:    fmt.Sprintf("Name %q already exists for language %q", name, lang),
		HTTPStatus: http.StatusConflict,
		Errors:     map[string][]string{KindDuplicateName: {name + "|" + lang}},
	}
}

// DuplicateTitle creates a 409 [AppError] for a per-language series title collision.
func DuplicateTitle(lang, title string) *AppError {
	return &AppError{
		Code:       KindDuplicateTitle,
		Message:    fmt.Sprintf("Title %q already exists for language %q", title, lang),
		HTTPStatus: http.StatusConflict,
		Errors:     map[string][]string{KindDuplicateTitle: {title + "|" + lang}},
	}
}

// InUse creates a 409 [AppError] for deletions blocked by existing references.
func InUse(resource string) *AppError {
	return &AppError{
		Code:       KindInUse,
		Message:    resource + " is still referenced and cannot be deleted",
		HTTPStatus: http.StatusConflict,
	}
}

// AlreadyPublished creates a 409 [AppError] for mutations that require a draft.
func AlreadyPublished(resource string) *AppError {
	return &AppError{
		Code:       KindAlreadyPublished,
		Message:    resource + " is already published",
		HTTPStatus: http.StatusConflict,
	}
}

// NotEnoughTranslations creates a 400 [AppError] for incomplete translation sets.
// missing lists the language codes that have no translation row.
func NotEnoughTranslations(missing []string) *AppError {
	return &AppError{
		Code:       KindNotEnoughTranslations,
		Message:    "A translation is required for every supported language",
		HTTPStatus: http.StatusBadRequest,
		Errors:     map[string][]string{KindNotEnoughTranslations: missing},
	}
}

// NoTranslationsProvided creates a 400 [AppError] for updates carrying no data.
func NoTranslationsProvided() *AppError {
	return &AppError{
		Code:       KindNoTranslationsProvided,
		Message:    "No translation data provided",
		HTTPStatus: http.StatusBadRequest,
	}
}

// PublishBlocked creates a 400 [AppError] carrying the publish gate's
// aggregated failure map for a single-artwork publish attempt.
func PublishBlocked(errs map[string][]string) *AppError {
	return &AppError{
		Code:       "PUBLISH_BLOCKED",
		Message:    "Artwork does not meet the publishing requirements",
		HTTPStatus: http.StatusBadRequest,
		Errors:     errs,
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

// Unprocessable creates a 422 [AppError] for semantically invalid input.
func Unprocessable(msg string) *AppError {
	return &AppError{
		Code:       "UNPROCESSABLE",
		Message:    msg,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ServiceUnavailable creates a 503 [AppError] for maintenance mode.
func ServiceUnavailable(msg string) *AppError {
	return &AppError{
		Code:       "SERVICE_UNAVAILABLE",
		Message:    msg,
		HTTPStatus: http.StatusServiceUnavailable,
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
