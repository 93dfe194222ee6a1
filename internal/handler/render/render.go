// Package render holds the JSON response helpers shared by handlers and
// middleware.
package render

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every error and plain-message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries per-field validation messages.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

// ValidationError writes the per-field messages with 422.
func ValidationError(w http.ResponseWriter, errors map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: errors})
}
