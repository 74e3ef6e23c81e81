package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/garnizeh/jobboard/internal/apperror"
	"log/slog"
)

// errorResponse is the error shape returned by every endpoint.
type errorResponse struct {
	Error   string                `json:"error"`
	Message string                `json:"message"`
	Fields  []apperror.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("encode response", slog.Any("err", err))
		}
	}
}

// writeError maps a domain error to exactly one transport status. Each error
// kind gets its own status so API clients keep distinguishability.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	kind := "internal_error"
	message := "internal error"
	var fields []apperror.FieldError

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		fields = appErr.Fields
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, apperror.ErrValidation):
		status = http.StatusBadRequest
		kind = "validation_error"
	case errors.Is(err, apperror.ErrUnauthenticated):
		status = http.StatusUnauthorized
		kind = "unauthenticated"
	case errors.Is(err, apperror.ErrForbidden):
		status = http.StatusForbidden
		kind = "forbidden"
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
		kind = "not_found"
	case errors.Is(err, apperror.ErrConflict):
		status = http.StatusConflict
		kind = "conflict"
	case errors.As(err, &maxBytesErr):
		status = http.StatusRequestEntityTooLarge
		kind = "payload_too_large"
		message = "request body too large"
	case errors.Is(err, apperror.ErrGenerator):
		status = http.StatusBadGateway
		kind = "generator_failure"
	case errors.Is(err, apperror.ErrStorage):
		status = http.StatusInternalServerError
		kind = "storage_failure"
	default:
		logger.Error("unclassified error", slog.Any("err", err))
		message = "internal error"
	}

	writeJSON(w, errorResponse{Error: kind, Message: message, Fields: fields}, status)
}
