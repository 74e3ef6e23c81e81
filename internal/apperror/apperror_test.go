package apperror_test

import (
	"errors"
	"testing"

	"github.com/garnizeh/jobboard/internal/apperror"
)

func TestSentinelClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", apperror.NotFound("job", 7), apperror.ErrNotFound},
		{"conflict", apperror.Conflict("username already taken"), apperror.ErrConflict},
		{"forbidden", apperror.Forbidden("nope"), apperror.ErrForbidden},
		{"unauthenticated", apperror.Unauthenticated("who are you"), apperror.ErrUnauthenticated},
		{"validation", apperror.Validation(), apperror.ErrValidation},
		{"storage", apperror.Storage(errors.New("disk on fire")), apperror.ErrStorage},
		{"generator", apperror.Generator(errors.New("model offline")), apperror.ErrGenerator},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Fatalf("expected %v in chain of %v", tc.want, tc.err)
			}
		})
	}
}

func TestStorageHidesCause(t *testing.T) {
	cause := errors.New("SQLITE_BUSY: database is locked")
	err := apperror.Storage(cause)

	if err.Error() != "storage failure" {
		t.Fatalf("user-facing message leaks internals: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("original cause lost from chain")
	}
}

func TestValidationFields(t *testing.T) {
	err := apperror.Validation(
		apperror.FieldError{Field: "title", Message: "is required"},
		apperror.FieldError{Field: "type", Message: "must be one of the allowed values"},
	)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if len(appErr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(appErr.Fields))
	}
	if appErr.Fields[0].Field != "title" {
		t.Fatalf("unexpected field order: %#v", appErr.Fields)
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := apperror.NotFound("application", 42)
	if err.Error() != "application 42 not found" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
