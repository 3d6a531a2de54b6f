package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a lookup, update or delete matches no document.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidID is returned when a path or body identifier is not a valid object id.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrInvalidPrice is returned when a price is missing or below the minimal currency unit.
	ErrInvalidPrice = errors.New("price must be at least 0.01")
	// ErrInvalidQuantity is returned when a cart quantity would drop below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrMissingEmail is returned when an email query parameter or field is absent.
	ErrMissingEmail = errors.New("email is required")
	// ErrInvalidRequest is returned when a request body cannot be decoded.
	ErrInvalidRequest = errors.New("invalid request body")
	// ErrUnauthorized is returned when the auth cookie is missing, invalid or revoked.
	ErrUnauthorized = errors.New("unauthorized access")
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

// ValidationError carries a request validation failure message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a validator message as a client input error.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ProviderError is returned when the payment provider rejects or fails a call.
type ProviderError struct {
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// MapErrorToHTTP maps domain errors to HTTP errors.
// Unknown errors are downstream failures and keep their message.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
	}
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return NewHTTPError(http.StatusInternalServerError, providerErr.Message, "PROVIDER_ERROR")
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ID")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case errors.Is(err, ErrMissingEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_EMAIL")
	case errors.Is(err, ErrInvalidRequest):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_REQUEST")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "INTERNAL_ERROR")
	}
}
