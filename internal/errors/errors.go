package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when a lookup by key fails.
	ErrNotFound = errors.New("not found")
	// ErrBadCredentials is returned when the password does not match.
	ErrBadCredentials = errors.New("incorrect password")
	// ErrDuplicateEmail is returned when signing up with a registered email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidQuantity is returned for a non-positive cart quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrIndexOutOfRange is returned for an index outside the current list.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotAuthenticated is returned when no session is present.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptyCart is returned when checking out an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoAddress is returned when no delivery address can be resolved.
	ErrNoAddress = errors.New("no delivery address")
)

// ValidationError reports a field-level input problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a field-level validation error.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Field      string
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
		Field: e.Field,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		httpErr := NewHTTPError(http.StatusBadRequest, ve.Message, "VALIDATION_ERROR")
		httpErr.Field = ve.Field
		return httpErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrBadCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "BAD_CREDENTIALS")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrIndexOutOfRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INDEX_OUT_OF_RANGE")
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrEmptyCart):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CART")
	case errors.Is(err, ErrNoAddress):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_ADDRESS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
