// Package web holds JSON response helpers and HTTP middleware shared by the REST handlers.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes payload as JSON with status. A nil payload writes the status only.
func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode response", "error", err, "status", status)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, ErrorResponse{Error: message})
}

// DecodeJSON reads a JSON body of at most limit bytes into dst. On failure it has already
// responded with 413 for an oversized body or 400 otherwise, and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, limit int64, dst any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		logger.WarnContext(r.Context(), "Request body too large", "limit", tooLarge.Limit)
		RespondError(w, logger, http.StatusRequestEntityTooLarge, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		return false
	}
	logger.WarnContext(r.Context(), "Malformed request body", "error", err)
	RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
	return false
}

// RespondValidationError writes a 400 naming the rule each field failed.
func RespondValidationError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		logger.ErrorContext(r.Context(), "Request validation failed", "error", err)
		RespondError(w, logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	failed := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.Field()] = "failed on rule: " + fe.Tag()
	}
	logger.WarnContext(r.Context(), "Request rejected by validation", "errors", failed)
	RespondJSON(w, logger, http.StatusBadRequest, map[string]any{"validation_errors": failed})
}

// ParseID reads the positive "id" path value, responding 400 when it is not one.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		RespondError(w, logger, http.StatusBadRequest, "Invalid ID: "+raw)
		return 0, false
	}
	return id, true
}

// ParseOptionalBool reads a boolean query parameter. A missing parameter yields nil.
func ParseOptionalBool(w http.ResponseWriter, r *http.Request, logger *slog.Logger, key string) (*bool, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s value: %s", key, raw))
		return nil, false
	}
	return &v, true
}
