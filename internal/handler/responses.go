package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNotEnoughCreditsError = "Not enough credits"
	ErrMsgNotEnoughTicketsError = "Not enough tickets"
	ErrMsgInvalidActionError    = "That action is not allowed right now"
	ErrMsgGameOverError         = "The game is over - restart to play again"
	ErrMsgSessionNotFoundError  = "Session not found"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgTalismanNotFoundError = "Talisman not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Rejected preconditions are client errors; a terminal-state
// rejection is a conflict so clients know to resync or restart.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCreditsError
	case errors.Is(err, domain.ErrInsufficientTickets):
		return http.StatusBadRequest, ErrMsgNotEnoughTicketsError
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, ErrMsgInvalidActionError
	case errors.Is(err, domain.ErrTerminalState):
		return http.StatusConflict, ErrMsgGameOverError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrTalismanNotFound):
		return http.StatusNotFound, ErrMsgTalismanNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError maps and sends a service error.
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
