package handler

import (
	"net/http"
	"time"
)

// HandleHealth reports that the server is up.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "success",
		"message":   "Server is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleNotFound answers every unmatched route.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"success": false,
		"message": "Route not found",
	})
}
