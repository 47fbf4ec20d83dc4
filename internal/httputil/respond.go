package httputil

import (
	"encoding/json"
	"net/http"
)

// M is a convenience type for ad hoc JSON response bodies.
type M map[string]any

// JSON writes v as a JSON response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes the standard {message, success} envelope.
func Message(w http.ResponseWriter, status int, message string, success bool) {
	JSON(w, status, M{"message": message, "success": success})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, status int, message string) {
	Message(w, status, message, false)
}
