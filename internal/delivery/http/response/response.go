// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope every endpoint answers with, success or not.
// Data carries the payload on success; Error is populated on failure.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code, repeated in the body for log scrapers.
	Message string     `json:"message"` // Short human-readable summary.
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo identifies what went wrong in a machine-matchable way.
type ErrorInfo struct {
	Code    string `json:"code"`    // Stable business code, e.g. "GEOFENCE_NOT_FOUND".
	Details string `json:"details"` // Free-form elaboration, may be empty.
}

// Success writes a success envelope with the given payload.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. An empty message falls back to the
// standard text for the status code.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest reports a request the handler understood but rejected.
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError reports a request body that failed to bind or validate.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// InternalServerError reports a failure the caller cannot do anything about.
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
