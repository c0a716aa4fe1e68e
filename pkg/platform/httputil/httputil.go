// Package httputil writes JSON responses and maps domain errors to HTTP
// statuses. Error bodies are always {"error": code, "error_description": msg}.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "radar/pkg/domain-errors"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor maps a domain error code to an HTTP status.
func StatusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeInvalidState, dErrors.CodeConflict:
		return http.StatusConflict
	case dErrors.CodeIncompleteAssessment:
		return http.StatusUnprocessableEntity
	case dErrors.CodeConsentRequired, dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeStorage:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes a structured error. Messages of integrity, storage and
// internal errors are withheld so storage internals never reach the caller.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := ErrorResponse{Error: string(code)}
	if de, ok := dErrors.As(err); ok && exposesMessage(code) {
		body.Description = de.Message
	}
	WriteJSON(w, StatusFor(code), body)
}

func exposesMessage(code dErrors.Code) bool {
	switch code {
	case dErrors.CodeInternal, dErrors.CodeStorage, dErrors.CodeConfiguration, dErrors.CodeDecryptionFailed:
		return false
	}
	return true
}
