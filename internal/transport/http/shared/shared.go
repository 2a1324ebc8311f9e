// Package shared centralizes JSON envelope writing so every handler maps
// domain errors to HTTP the same way.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "leaders/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response body.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the {error, details} envelope.
// Uncoded errors become opaque 500s; the details field carries the
// underlying cause for diagnostics only.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	payload := map[string]string{"error": "internal server error"}

	var de *dErrors.Error
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		payload["error"] = de.Message
		if details := de.Details(); details != "" {
			payload["details"] = details
		}
	}

	WriteJSON(w, status, payload)
}
