package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-session-auth/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response
// with the "application/json" content type and the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Returns the number of bytes written to the response body.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
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

// WriteError writes {"error": message} with the given status code.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// WriteText writes a plain-text body.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
