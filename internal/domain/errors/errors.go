// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"voltfeed/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Push channel errors. These degrade the client to polling-only mode and
	// are never surfaced to the UI as blocking failures.
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"notification permission was denied",
		"",
	)

	ErrProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PROVIDER_UNAVAILABLE",
		"push provider is unavailable on this platform",
		"",
	)

	// Backend errors.
	ErrTransientNetwork = NewBaseError(
		http.StatusServiceUnavailable,
		"TRANSIENT_NETWORK",
		"could not reach the notification API",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	// Identity errors.
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"no authenticated identity is active",
		"",
	)

	// Validation errors.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrFeatureDisabled = NewBaseError(
		http.StatusNotFound,
		"FEATURE_DISABLED",
		"this feature is disabled by configuration",
		"",
	)
)

// RemoteCallError represents a failed round-trip to the notification API,
// implementing the AppError interface
type RemoteCallError struct {
	err     error
	details string
}

// NewRemoteCallError creates a notification-API-related error
func NewRemoteCallError(err error, details string) AppError {
	return &RemoteCallError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *RemoteCallError) Error() string {
	return errors.Wrap(e.err, "notification API call failed").Error()
}

// Unwrap exposes the underlying transport error.
func (e *RemoteCallError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *RemoteCallError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteCallError) ErrorCode() string {
	return "REMOTE_CALL_FAILED"
}

// Message returns the user-friendly error message
func (e *RemoteCallError) Message() string {
	return "notification API call failed"
}

// Details returns detailed error information
func (e *RemoteCallError) Details() string {
	return e.details
}
