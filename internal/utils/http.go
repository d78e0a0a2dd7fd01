package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-chat-messenger/models"
)

// WriteJSON serializes data to JSON and writes it to the HTTP response with
// the given status code. If marshaling fails it responds with 500 and returns
// a wrapped error.
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

// WriteError writes the API error body {"detail": ...} with the given status
// code. Every non-2xx response of the server goes through this helper so
// clients can rely on the detail field.
func WriteError(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = WriteJSON(w, models.APIError{Detail: detail}, statusCode)
}
