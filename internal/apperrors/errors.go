package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStore indicates that the backing data store failed (connectivity, driver error).
var ErrStore = errors.New("store error")

// AppError carries an HTTP-ish status code and a message alongside the error kind
// (one of the sentinels above) and the underlying cause.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports malformed input or a missing required identifier.
func NewValidationError(format string, args ...any) error {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
		Kind:    ErrValidation,
	}
}

// NewNotFoundError reports a referenced invoice, truck, customer or detail that does not exist.
func NewNotFoundError(format string, args ...any) error {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
		Kind:    ErrNotFound,
	}
}

// NewDuplicateError reports a unique constraint conflict.
func NewDuplicateError(format string, args ...any) error {
	return &AppError{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf(format, args...),
		Kind:    ErrDuplicate,
	}
}

// NewStoreError wraps a data store failure.
func NewStoreError(message string, err error) error {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Kind:    ErrStore,
		Err:     err,
	}
}

// StatusCode returns the status code carried by err, or 500 when err is not an AppError.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
