package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRecordNotFound is returned when a record does not exist or is not
	// owned by the caller. The two cases are deliberately indistinguishable.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidAmount is returned when an amount is missing, zero, or negative.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrInvalidMonth is returned when a budget month is not a YYYY-MM value.
	ErrInvalidMonth = errors.New("budget month must be in YYYY-MM format")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors are
// reported as opaque server errors so storage details never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrInvalidMonth):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_MONTH")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
