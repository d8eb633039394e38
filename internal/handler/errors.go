package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/account-service/internal/domain"
)

const msgInternal = "Internal server error"

// errorWriter maps service errors to HTTP responses.
type errorWriter struct {
	development bool
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if errors.As(err, &de) && de.Kind != domain.KindInternal {
		writeJSON(w, de.Kind.HTTPStatus(), errorEnvelope{
			Status:  "error",
			Message: de.Message,
			Errors:  de.Fields,
		})
		return
	}

	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	body := errorEnvelope{Status: "error", Message: msgInternal}
	if e.development {
		body.Error = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}
