// Package handlers holds the JSON helpers shared by every endpoint
// handler. Error payloads carry a stable machine code next to the
// human message, so clients can react specifically: a slot conflict
// tells the form to re-fetch availability instead of re-submitting.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Machine error codes.
const (
	CodeValidation        = "validation_error"
	CodeSlotConflict      = "slot_conflict"
	CodeInvalidTransition = "invalid_transition"
	CodeNotFound          = "not_found"
	CodeUnauthorized      = "unauthorized"
	CodeForbidden         = "forbidden"
	CodeStoreUnavailable  = "store_unavailable"
	CodeInternal          = "internal_error"
)

// maxBodyBytes caps request bodies; booking payloads are small.
const maxBodyBytes = 1 << 20

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine code and the human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeJSON decodes a JSON request body into v, rejecting unknown
// fields and oversized bodies.
func DecodeJSON(r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	// A second value means trailing garbage after the JSON document
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode request body: unexpected trailing data")
	}
	return nil
}

// RespondJSON writes v as JSON with the given status. A nil v writes
// only the status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes the uniform error envelope.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// RespondBadRequest writes a 400 validation error.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeValidation, message)
}

// RespondNotFound writes a 404.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondUnauthorized writes a 401.
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

// RespondForbidden writes a 403.
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

// RespondConflict writes a 409 with the given conflict code
// (CodeSlotConflict or CodeInvalidTransition).
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

// RespondServiceUnavailable writes a 503 for retryable store failures.
func RespondServiceUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusServiceUnavailable, CodeStoreUnavailable, message)
}

// RespondInternalError writes a generic 500.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
}
