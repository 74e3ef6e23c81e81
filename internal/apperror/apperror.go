package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the domain error taxonomy. Handlers map each of these
// to exactly one transport status via errors.Is.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrStorage         = errors.New("storage failure")
	ErrGenerator       = errors.New("generator failure")
)

// FieldError describes a single violated field in a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError carries a sentinel for classification, a user-facing message and,
// for validation failures, the full list of violated fields.
type AppError struct {
	Err     error
	Message string
	Fields  []FieldError
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s %d not found", resource, id),
	}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func Unauthenticated(message string) *AppError {
	return &AppError{Err: ErrUnauthenticated, Message: message}
}

// Validation reports every violated field, not just the first.
func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "request validation failed",
		Fields:  fields,
	}
}

// Storage wraps a backend error. The original error stays in the chain for
// logging; the message shown to callers never leaks backend internals.
func Storage(err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrStorage, err),
		Message: "storage failure",
	}
}

// Generator wraps a failed document-generation call.
func Generator(err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrGenerator, err),
		Message: "document generation failed, please try again later",
	}
}
