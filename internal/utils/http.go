package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-blog/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes a {"message": ...} body with the given status.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// SafeRedirect returns next when it is a site-relative location and
// fallback otherwise. Absolute URLs and scheme-relative ("//host") values
// are rejected so a login link cannot bounce users to another site.
func SafeRedirect(next, fallback string) string {
	if next == "" {
		return fallback
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Opaque != "" {
		return fallback
	}
	if len(next) > 1 && next[0] == '/' && (next[1] == '/' || next[1] == '\\') {
		return fallback
	}
	if next[0] != '/' {
		return fallback
	}

	return next
}
