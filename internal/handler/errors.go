package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse - standard error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse - envelope used by the auth gates
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - universal function for sending errors
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteMessage - sends a {"message": ...} body, used for the fixed
// "unauthorized access" / "forbidden access" responses
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(MessageResponse{Message: message})
}

// WriteSuccess - function for successful responses
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
