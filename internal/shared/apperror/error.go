package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Kind       Kind   // How the caller should react
	Message    string // User-friendly message
	HTTPStatus int    // HTTP status code
	Details    any    // Field level details (optional)
	Err        error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches sentinel AppErrors by code and message so wrapped copies
// produced by Wrap/WithDetails still satisfy errors.Is against the sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithDetails returns a copy of e carrying details.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kindForStatus(httpStatus),
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// NewWithKind creates an AppError whose kind does not follow from its status.
func NewWithKind(kind Kind, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Kind:       kindForStatus(httpStatus),
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Persistence wraps a storage or broker failure.
func Persistence(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       CodePersistenceFailed,
		Kind:       KindPersistenceFailed,
		Message:    message,
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

// KindOf reports the Kind of err. Errors that are not AppErrors are Internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != "" {
		return appErr.Kind
	}
	return KindInternal
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidationFailed
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict, http.StatusTooManyRequests:
		return KindConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindForbidden
	case http.StatusServiceUnavailable:
		return KindPersistenceFailed
	default:
		return KindInternal
	}
}
