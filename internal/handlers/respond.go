package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"hrms-backend/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the error to its HTTP status. Internal errors are
// logged server-side and surfaced with a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := apperr.StatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] Internal error: %v", err)
		message = "Internal server error"
	}
	writeJSON(w, status, map[string]string{"error": message})
}
