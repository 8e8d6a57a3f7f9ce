package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farrow-dev/SkullPit_Go/internal/event"
	"github.com/farrow-dev/SkullPit_Go/internal/game"
	"github.com/farrow-dev/SkullPit_Go/internal/reel"
	"github.com/farrow-dev/SkullPit_Go/internal/round"
	"github.com/farrow-dev/SkullPit_Go/internal/shop"
	"github.com/farrow-dev/SkullPit_Go/internal/store"
)

// newTestHandler wires a real game service over an in-memory store. The
// grid generator always draws the first symbol so spins are deterministic.
func newTestHandler(t *testing.T) *GameHandler {
	t.Helper()

	memStore := store.NewMemoryStore()
	svc := game.NewService(
		round.NewService(),
		shop.NewService(),
		reel.NewGeneratorWithRNG(func() float64 { return 0.1 }),
		game.NewSessionManager(16, time.Minute, memStore),
		memStore,
		event.NewMemoryBus(),
		nil,
	)
	return NewGameHandler(svc)
}

func postJSON(t *testing.T, handlerFn http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handlerFn(w, req)
	return w
}

// startSession creates a game and returns its session id.
func startSession(t *testing.T, h *GameHandler) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/game/new", nil)
	w := httptest.NewRecorder()
	h.HandleNewGame(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var snap game.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.NotEmpty(t, snap.State.SessionID)
	return snap.State.SessionID
}

func TestHandleNewGame(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/game/new", nil)
	w := httptest.NewRecorder()
	h.HandleNewGame(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var snap game.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.NotEmpty(t, snap.State.SessionID)
	assert.Equal(t, 1, snap.State.Round)
	assert.NotEmpty(t, snap.State.ShopOffers)
}

func TestHandleGetState(t *testing.T) {
	h := newTestHandler(t)
	sessionID := startSession(t, h)

	t.Run("Existing Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state?session_id="+sessionID, nil)
		w := httptest.NewRecorder()
		h.HandleGetState(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var snap game.Snapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		assert.Equal(t, sessionID, snap.State.SessionID)
	})

	t.Run("Missing Session ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state", nil)
		w := httptest.NewRecorder()
		h.HandleGetState(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed Session ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state?session_id=not-a-uuid", nil)
		w := httptest.NewRecorder()
		h.HandleGetState(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidSessionID)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state?session_id=8f14e45f-ceea-467f-a0e6-b4e6c8b8c001", nil)
		w := httptest.NewRecorder()
		h.HandleGetState(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSessionNotFoundError)
	})
}

func TestHandleSpin(t *testing.T) {
	h := newTestHandler(t)
	sessionID := startSession(t, h)

	t.Run("Wrong Phase", func(t *testing.T) {
		w := postJSON(t, h.HandleSpin, "/api/v1/game/spin", SpinRequest{SessionID: sessionID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidActionError)
	})

	// Resolve the day-1 difficulty choice so spinning becomes legal.
	w := postJSON(t, h.HandleSelectDifficulty, "/api/v1/game/day/difficulty", DifficultyRequest{SessionID: sessionID})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("Winning Spin", func(t *testing.T) {
		w := postJSON(t, h.HandleSpin, "/api/v1/game/spin", SpinRequest{SessionID: sessionID})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp SpinResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Outcome)
		assert.Greater(t, resp.Outcome.Payout, 0)
		require.NotNil(t, resp.Snapshot)
		assert.Equal(t, resp.Snapshot.State.SpinsLeft, resp.Snapshot.State.MaxSpins-1)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		w := postJSON(t, h.HandleSpin, "/api/v1/game/spin", SpinRequest{SessionID: "nope"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "sessionid")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/game/spin", bytes.NewReader([]byte("not json")))
		w := httptest.NewRecorder()
		h.HandleSpin(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandleItemIntents(t *testing.T) {
	h := newTestHandler(t)
	sessionID := startSession(t, h)

	t.Run("Buy Coin Item", func(t *testing.T) {
		w := postJSON(t, h.HandleBuyCoinItem, "/api/v1/game/item/coin/buy", ItemRequest{
			SessionID: sessionID,
			ItemID:    "double_star",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var snap game.Snapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		assert.Equal(t, 1, snap.State.CoinItems["double_star"])
	})

	t.Run("Unknown Item", func(t *testing.T) {
		w := postJSON(t, h.HandleBuyCoinItem, "/api/v1/game/item/coin/buy", ItemRequest{
			SessionID: sessionID,
			ItemID:    "no_such_item",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgItemNotFoundError)
	})

	t.Run("Insufficient Credits", func(t *testing.T) {
		// Starting credits cover only so much; drain them with purchases.
		for {
			w := postJSON(t, h.HandleBuyCoinItem, "/api/v1/game/item/coin/buy", ItemRequest{
				SessionID: sessionID,
				ItemID:    "double_star",
			})
			if w.Code != http.StatusOK {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), ErrMsgNotEnoughCreditsError)
				break
			}
		}
	})

	t.Run("Unknown Talisman", func(t *testing.T) {
		w := postJSON(t, h.HandlePurchaseTalisman, "/api/v1/game/shop/purchase", ItemRequest{
			SessionID: sessionID,
			ItemID:    "no_such_talisman",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgTalismanNotFoundError)
	})
}

func TestHandleMakePayment(t *testing.T) {
	h := newTestHandler(t)
	sessionID := startSession(t, h)

	t.Run("Valid Payment", func(t *testing.T) {
		w := postJSON(t, h.HandleMakePayment, "/api/v1/game/payment", PaymentRequest{
			SessionID: sessionID,
			Amount:    10,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp PaymentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 10, resp.Result.Paid)
		require.NotNil(t, resp.Snapshot)
		assert.Equal(t, 10, resp.Snapshot.State.PaidAmount)
	})

	t.Run("Zero Amount Rejected By Validation", func(t *testing.T) {
		w := postJSON(t, h.HandleMakePayment, "/api/v1/game/payment", PaymentRequest{
			SessionID: sessionID,
			Amount:    0,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Overpayment Rejected", func(t *testing.T) {
		w := postJSON(t, h.HandleMakePayment, "/api/v1/game/payment", PaymentRequest{
			SessionID: sessionID,
			Amount:    999999,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidActionError)
	})
}

func TestHandleRestart(t *testing.T) {
	h := newTestHandler(t)
	sessionID := startSession(t, h)

	w := postJSON(t, h.HandleRestart, "/api/v1/game/restart", SessionRequest{SessionID: sessionID})
	assert.Equal(t, http.StatusOK, w.Code)

	var snap game.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, sessionID, snap.State.SessionID)
	assert.Equal(t, 1, snap.State.Round)
}

func TestHandleLeaderboard(t *testing.T) {
	memStore := store.NewMemoryStore()
	require.NoError(t, memStore.RecordResult(context.Background(), store.LeaderboardEntry{
		SessionID:    "a",
		FinalCredits: 300,
		RoundReached: 2,
	}))

	svc := game.NewService(
		round.NewService(),
		shop.NewService(),
		reel.NewGenerator(),
		game.NewSessionManager(16, time.Minute, memStore),
		memStore,
		event.NewMemoryBus(),
		nil,
	)
	h := NewGameHandler(svc)

	t.Run("Returns Entries", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
		w := httptest.NewRecorder()
		h.HandleLeaderboard(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var entries []store.LeaderboardEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, 300, entries[0].FinalCredits)
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=-3", nil)
		w := httptest.NewRecorder()
		h.HandleLeaderboard(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
	})
}
