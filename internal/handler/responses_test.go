package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"Insufficient Funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughCreditsError},
		{"Insufficient Tickets", domain.ErrInsufficientTickets, http.StatusBadRequest, ErrMsgNotEnoughTicketsError},
		{"Invalid Action", domain.ErrInvalidAction, http.StatusBadRequest, ErrMsgInvalidActionError},
		{"Terminal State", domain.ErrTerminalState, http.StatusConflict, ErrMsgGameOverError},
		{"Session Not Found", domain.ErrSessionNotFound, http.StatusNotFound, ErrMsgSessionNotFoundError},
		{"Item Not Found", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"Talisman Not Found", domain.ErrTalismanNotFound, http.StatusNotFound, ErrMsgTalismanNotFoundError},
		{"Wrapped Error", fmt.Errorf("%w: spins remaining", domain.ErrInvalidAction), http.StatusBadRequest, ErrMsgInvalidActionError},
		{"Unknown Error", errors.New("boom"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"Nil Error", nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusTeapot, SuccessResponse{Message: "ok"})

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}
