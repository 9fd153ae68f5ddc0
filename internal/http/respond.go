package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"paisa/internal/services"
)

// Every API endpoint answers with a {success, ...} envelope: data on
// success, error on failure, message for confirmations.
type (
	dataResponse struct {
		Success bool `json:"success"`
		Data    any  `json:"data"`
	}

	messageResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	errorResponse struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// ValidationError -> 400, NotFoundError -> 404, anything else -> 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr  *services.ValidationError
		nferr *services.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &nferr):
		writeError(w, http.StatusNotFound, "Expense not found")
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"error", err, "method", r.Method, "url", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
