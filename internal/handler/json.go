package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/msomdec/account-service/internal/domain"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// envelope is the body of every successful API response.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// errorEnvelope is the body of every failed API response. Error carries the
// underlying cause and is only filled in development mode.
type errorEnvelope struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"`
}

var errEmptyBody = errors.New("request body is empty")

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeSuccess wraps data in the success envelope.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Status: "success", Message: message, Data: data})
}

// writeError sends an error envelope with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorEnvelope{Status: "error", Message: message})
}

// readJSON decodes a size-capped request body into dst. Unknown fields are
// ignored.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// decodeRequest reads and validates a JSON body, writing a 400 response on
// failure. It reports whether the handler should continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, errs errorWriter, dst any) bool {
	if err := readJSON(w, r, dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validateRequest(dst); err != nil {
		errs.write(w, r, err)
		return false
	}
	return true
}
