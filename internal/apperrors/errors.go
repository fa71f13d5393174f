package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnsupportedMediaType indicates the request body was not sent as JSON.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// ErrUpstream indicates a failure in a dependency the request relied on (database, driver).
var ErrUpstream = errors.New("upstream failure")

// AppError carries an HTTP-ish status code alongside a message and the underlying cause.
// It unwraps to the sentinel matching its code so callers can keep using errors.Is.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped cause and the sentinel for the error's code.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	switch e.Code {
	case http.StatusNotFound:
		errs = append(errs, ErrNotFound)
	case http.StatusBadRequest:
		errs = append(errs, ErrValidation)
	case http.StatusUnsupportedMediaType:
		errs = append(errs, ErrUnsupportedMediaType)
	case http.StatusInternalServerError, http.StatusBadGateway:
		errs = append(errs, ErrUpstream)
	}
	return errs
}

// NewAppError builds an AppError with an explicit code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewValidationError builds an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// StatusCode maps an error onto the HTTP status the API reports for it.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}
