package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for any failed login. Missing
	// accounts, inactive accounts, and bad passwords all fold into it so the
	// caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated is returned when a request carries no resolvable
	// admin session.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the session admin lacks the required tier.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrEmailTaken is returned when a create hits a duplicate email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrSelfDelete is returned when an admin tries to delete their own account.
	ErrSelfDelete = errors.New("cannot delete your own account")
	// ErrUserNotFound is returned when a user record is missing.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when a post record is missing.
	ErrPostNotFound = errors.New("post not found")
	// ErrAdminNotFound is returned when an admin record is missing.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrInvalidIntent is returned for an unknown form intent.
	ErrInvalidIntent = errors.New("invalid action")
	// ErrInvalidStatus is returned for an unknown post status.
	ErrInvalidStatus = errors.New("invalid post status")
	// ErrInvalidRole is returned for an unknown admin role.
	ErrInvalidRole = errors.New("invalid role")
)

// ErrorResponse represents a standardized error payload.
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

// MapErrorToHTTP maps domain errors to HTTP errors. Auth failures are not
// mapped here: those surface as redirects, never as error payloads.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrSelfDelete):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_DELETE")
	case errors.Is(err, ErrInvalidIntent):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INTENT")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPostNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "POST_NOT_FOUND")
	case errors.Is(err, ErrAdminNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ADMIN_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
