package handler

import (
	"encoding/json"
	"net/http"
)

// tokenResponse is the success body for signup and login.
type tokenResponse struct {
	Token string `json:"token"`
}

// errorResponse is the minimal error body; rejection messages are fixed
// strings, never raw internal error text.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
