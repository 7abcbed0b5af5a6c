package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateAccount is returned when the registration email is already taken.
	ErrDuplicateAccount = errors.New("email already exists")
	// ErrInvalidCredentials is returned for a failed login. It covers both an
	// unknown email and a wrong password so the caller cannot tell which.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrForbidden is returned when the caller's role does not permit the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrGuardianNotFound is returned when a guardian lookup misses.
	ErrGuardianNotFound = errors.New("guardian not found")
	// ErrBusNotFound is returned when a bus lookup misses.
	ErrBusNotFound = errors.New("bus not found")
	// ErrLocationNotFound is returned when a bus has no recorded location yet.
	ErrLocationNotFound = errors.New("no location recorded for bus")
	// ErrInvalidLocation is returned when a reported GPS fix fails plausibility checks.
	ErrInvalidLocation = errors.New("invalid location payload")
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

// MapErrorToHTTP maps domain errors to HTTP errors. A duplicate registration is
// a 400, not a 409, matching the public API contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateAccount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_ACCOUNT")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrGuardianNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "GUARDIAN_NOT_FOUND")
	case errors.Is(err, ErrBusNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BUS_NOT_FOUND")
	case errors.Is(err, ErrLocationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LOCATION_NOT_FOUND")
	case errors.Is(err, ErrInvalidLocation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_LOCATION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
