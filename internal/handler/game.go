package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
	"github.com/farrow-dev/SkullPit_Go/internal/game"
	"github.com/farrow-dev/SkullPit_Go/internal/ledger"
	"github.com/farrow-dev/SkullPit_Go/internal/logger"
)

// GameHandler exposes the game service over HTTP.
type GameHandler struct {
	service game.Service
}

func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// HandleNewGame starts a fresh session
// @Summary Start a new game
// @Tags game
// @Produce json
// @Success 201 {object} game.Snapshot
// @Router /api/v1/game/new [post]
func (h *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.NewGame(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to start new game", "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, snapshot)
}

// HandleGetState returns the current state snapshot for a session
// @Summary Get game state
// @Tags game
// @Produce json
// @Param session_id query string true "Session ID"
// @Success 200 {object} game.Snapshot
// @Router /api/v1/game/state [get]
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionIDParam(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.GetSnapshot(r.Context(), sessionID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get game state", "error", err)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

type SpinRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	Bonus     bool   `json:"bonus"`
}

// SpinResponse pairs the spin outcome with the updated snapshot.
type SpinResponse struct {
	Outcome  *domain.SpinOutcome `json:"outcome"`
	Snapshot *game.Snapshot      `json:"snapshot"`
}

// HandleSpin performs one spin
// @Summary Spin the grid
// @Tags game
// @Accept json
// @Produce json
// @Success 200 {object} SpinResponse
// @Router /api/v1/game/spin [post]
func (h *GameHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin"); err != nil {
		return
	}

	outcome, snapshot, err := h.service.Spin(r.Context(), req.SessionID, req.Bonus)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to spin", "error", err, "session_id", req.SessionID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, SpinResponse{Outcome: outcome, Snapshot: snapshot})
}

type ItemRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	ItemID    string `json:"item_id" validate:"required,max=64"`
}

func (h *GameHandler) HandleBuyCoinItem(w http.ResponseWriter, r *http.Request) {
	h.itemIntent(w, r, "Buy coin item", h.service.BuyCoinItem)
}

func (h *GameHandler) HandleUseCoinItem(w http.ResponseWriter, r *http.Request) {
	h.itemIntent(w, r, "Use coin item", h.service.UseCoinItem)
}

func (h *GameHandler) HandleBuyTicketItem(w http.ResponseWriter, r *http.Request) {
	h.itemIntent(w, r, "Buy ticket item", h.service.BuyTicketItem)
}

func (h *GameHandler) HandleUseTicketItem(w http.ResponseWriter, r *http.Request) {
	h.itemIntent(w, r, "Use ticket item", h.service.UseTicketItem)
}

func (h *GameHandler) HandlePurchaseTalisman(w http.ResponseWriter, r *http.Request) {
	h.itemIntent(w, r, "Purchase talisman", h.service.PurchaseTalisman)
}

type SessionRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
}

// HandleRerollShop rerolls the current shop offers for an escalating fee
func (h *GameHandler) HandleRerollShop(w http.ResponseWriter, r *http.Request) {
	h.sessionIntent(w, r, "Reroll shop", h.service.RerollShop)
}

type PaymentRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	Amount    int    `json:"amount" validate:"required,gt=0"`
}

// PaymentResponse pairs the payment breakdown with the updated snapshot.
type PaymentResponse struct {
	Result   ledger.PaymentResult `json:"result"`
	Snapshot *game.Snapshot       `json:"snapshot"`
}

// HandleMakePayment pays down the round's debt
// @Summary Make a debt payment
// @Tags game
// @Accept json
// @Produce json
// @Success 200 {object} PaymentResponse
// @Router /api/v1/game/payment [post]
func (h *GameHandler) HandleMakePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Make payment"); err != nil {
		return
	}

	result, snapshot, err := h.service.MakePayment(r.Context(), req.SessionID, req.Amount)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to make payment", "error", err, "session_id", req.SessionID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, PaymentResponse{Result: result, Snapshot: snapshot})
}

type DifficultyRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	Risky     bool   `json:"risky"`
}

// HandleSelectDifficulty commits the day's difficulty choice
func (h *GameHandler) HandleSelectDifficulty(w http.ResponseWriter, r *http.Request) {
	var req DifficultyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select difficulty"); err != nil {
		return
	}

	snapshot, err := h.service.SelectDifficulty(r.Context(), req.SessionID, req.Risky)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to select difficulty", "error", err, "session_id", req.SessionID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleEndDay closes out the current day
func (h *GameHandler) HandleEndDay(w http.ResponseWriter, r *http.Request) {
	h.sessionIntent(w, r, "End day", h.service.EndDay)
}

type PhoneSelectRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	BonusID   string `json:"bonus_id" validate:"required,max=64"`
}

// HandleSelectPhoneBonus picks one of the offered phone bonuses
func (h *GameHandler) HandleSelectPhoneBonus(w http.ResponseWriter, r *http.Request) {
	var req PhoneSelectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Select phone bonus"); err != nil {
		return
	}

	snapshot, err := h.service.SelectPhoneBonus(r.Context(), req.SessionID, req.BonusID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to select phone bonus", "error", err, "session_id", req.SessionID)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleRestart wipes the session back to a fresh game
func (h *GameHandler) HandleRestart(w http.ResponseWriter, r *http.Request) {
	h.sessionIntent(w, r, "Restart", h.service.Restart)
}

// HandleLeaderboard lists the top finished runs
// @Summary Get leaderboard
// @Tags game
// @Produce json
// @Param limit query int false "Max entries (default 10)"
// @Router /api/v1/leaderboard [get]
func (h *GameHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limitStr := GetOptionalQueryParam(r, "limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	entries, err := h.service.TopResults(r.Context(), limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get leaderboard", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGetLeaderboardFailed)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// itemIntent is shared plumbing for intents that take a session id and an item id.
func (h *GameHandler) itemIntent(
	w http.ResponseWriter,
	r *http.Request,
	actionName string,
	op func(ctx context.Context, sessionID, itemID string) (*game.Snapshot, error),
) {
	var req ItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, actionName); err != nil {
		return
	}

	snapshot, err := op(r.Context(), req.SessionID, req.ItemID)
	if err != nil {
		logger.FromContext(r.Context()).Error(
			fmt.Sprintf("Failed to handle %s", actionName),
			"error", err, "session_id", req.SessionID, "item_id", req.ItemID,
		)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// sessionIntent is shared plumbing for intents that only need a session id.
func (h *GameHandler) sessionIntent(
	w http.ResponseWriter,
	r *http.Request,
	actionName string,
	op func(ctx context.Context, sessionID string) (*game.Snapshot, error),
) {
	var req SessionRequest
	if err := DecodeAndValidateRequest(r, w, &req, actionName); err != nil {
		return
	}

	snapshot, err := op(r.Context(), req.SessionID)
	if err != nil {
		logger.FromContext(r.Context()).Error(
			fmt.Sprintf("Failed to handle %s", actionName),
			"error", err, "session_id", req.SessionID,
		)
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// sessionIDParam extracts and validates the session_id query parameter.
func (h *GameHandler) sessionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	value, ok := GetQueryParam(r, w, "session_id")
	if !ok {
		return "", false
	}
	if _, err := uuid.Parse(value); err != nil {
		http.Error(w, ErrMsgInvalidSessionID, http.StatusBadRequest)
		return "", false
	}
	return value, true
}
