package errors

import (
	"errors"
	"net/http"
)

// Error classes. Specific errors wrap one of these so callers can match with errors.Is.
var (
	// ErrValidation is returned for missing, malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated is returned when credentials are missing, invalid or expired.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("admin privileges required")
	// ErrNotFound is returned when an entity is absent or not owned by the caller.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a unique key is already taken.
	ErrConflict = errors.New("already exists")
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = Wrap(ErrUnauthenticated, "invalid username or password")
	// ErrWrongPassword is returned when the current password given for a change does not match.
	ErrWrongPassword = Wrap(ErrUnauthenticated, "current password is incorrect")
	// ErrPasswordTooShort is returned when a new password has fewer than four characters.
	ErrPasswordTooShort = Wrap(ErrValidation, "password must be at least 4 characters")
	// ErrNoFieldsToUpdate is returned for an empty patch.
	ErrNoFieldsToUpdate = Wrap(ErrValidation, "no fields to update")
	// ErrSelfDeletion is returned when an admin tries to delete the account they are logged in with.
	ErrSelfDeletion = Wrap(ErrValidation, "cannot delete your own account")
	// ErrUsernameTaken is returned when a username is already in use.
	ErrUsernameTaken = Wrap(ErrConflict, "username already exists")
	// ErrFoodExists is returned when a catalog food name is already in use.
	ErrFoodExists = Wrap(ErrConflict, "food already exists")
	// ErrReadingExists is returned when another reading holds the same date and measurement type.
	ErrReadingExists = Wrap(ErrConflict, "a reading of this type already exists for that date")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = Wrap(ErrNotFound, "user not found")
	// ErrFoodNotFound is returned when a catalog id does not resolve.
	ErrFoodNotFound = Wrap(ErrNotFound, "food not found")
)

// Error is a domain error with its own message that still matches its class.
type Error struct {
	class   error
	message string
}

// Wrap builds an error of the given class with a specific message.
func Wrap(class error, message string) *Error {
	return &Error{class: class, message: message}
}

// Validation builds a validation error with message.
func Validation(message string) *Error {
	return Wrap(ErrValidation, message)
}

func (e *Error) Error() string {
	return e.message
}

// Unwrap exposes the error class.
func (e *Error) Unwrap() error {
	return e.class
}

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

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 without detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHENTICATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONFLICT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
