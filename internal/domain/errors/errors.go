// Package errors defines application-facing error types mapped to HTTP
// responses by the delivery layer.
package errors

import (
	"net/http"

	"perimeter/internal/errors"
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
	// Geofence-related errors
	ErrGeofenceNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOFENCE_NOT_FOUND",
		"Geofence not found",
		"",
	)

	ErrGeofenceInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_INVALID_RADIUS",
		"Geofence radius is out of bounds",
		"",
	)

	ErrGeofenceInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_INVALID_COORDINATES",
		"Geofence coordinates are invalid",
		"",
	)

	ErrGeofenceNameRequired = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_NAME_REQUIRED",
		"Geofence name is required",
		"",
	)

	// Settings-related errors
	ErrInvalidQuietHours = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUIET_HOURS",
		"Quiet hours window is invalid",
		"",
	)

	ErrInvalidPriority = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRIORITY",
		"Unknown notification priority",
		"",
	)

	ErrDNDEndDateInPast = NewBaseError(
		http.StatusBadRequest,
		"DND_END_DATE_IN_PAST",
		"Do Not Disturb end date must be in the future",
		"",
	)

	ErrDNDEndDateRequired = NewBaseError(
		http.StatusBadRequest,
		"DND_END_DATE_REQUIRED",
		"Do Not Disturb end date is required for the until duration",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
