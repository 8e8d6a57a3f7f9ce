// Package game is the engine facade: it owns session state and exposes the
// full intent surface. Every intent is validated, applied as one synchronous
// transaction under the session lock, persisted, and reported outward on the
// event bus.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
	"github.com/farrow-dev/SkullPit_Go/internal/event"
	"github.com/farrow-dev/SkullPit_Go/internal/ledger"
	"github.com/farrow-dev/SkullPit_Go/internal/logger"
	"github.com/farrow-dev/SkullPit_Go/internal/metrics"
	"github.com/farrow-dev/SkullPit_Go/internal/payline"
	"github.com/farrow-dev/SkullPit_Go/internal/reel"
	"github.com/farrow-dev/SkullPit_Go/internal/round"
	"github.com/farrow-dev/SkullPit_Go/internal/shop"
	"github.com/farrow-dev/SkullPit_Go/internal/store"
	"github.com/farrow-dev/SkullPit_Go/internal/utils"
)

// EligibilityProvider supplies the externally computed set of talismans the
// player may be offered. The engine filters offers against it but never
// computes eligibility itself; a nil provider or a failing call allows all.
type EligibilityProvider interface {
	EligibleTalismans(ctx context.Context, sessionID string) (map[string]bool, error)
}

// Service defines the interface for game engine operations
type Service interface {
	NewGame(ctx context.Context) (*Snapshot, error)
	GetSnapshot(ctx context.Context, sessionID string) (*Snapshot, error)

	Spin(ctx context.Context, sessionID string, bonus bool) (*domain.SpinOutcome, *Snapshot, error)

	BuyCoinItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error)
	UseCoinItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error)
	BuyTicketItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error)
	UseTicketItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error)

	PurchaseTalisman(ctx context.Context, sessionID, talismanID string) (*Snapshot, error)
	RerollShop(ctx context.Context, sessionID string) (*Snapshot, error)

	MakePayment(ctx context.Context, sessionID string, amount int) (ledger.PaymentResult, *Snapshot, error)
	SelectDifficulty(ctx context.Context, sessionID string, risky bool) (*Snapshot, error)
	SelectPhoneBonus(ctx context.Context, sessionID, bonusID string) (*Snapshot, error)
	EndDay(ctx context.Context, sessionID string) (*Snapshot, error)
	Restart(ctx context.Context, sessionID string) (*Snapshot, error)

	TopResults(ctx context.Context, limit int) ([]store.LeaderboardEntry, error)
}

type service struct {
	rounds      *round.Service
	shop        *shop.Service
	generator   *reel.Generator
	sessions    *SessionManager
	store       store.Store
	publisher   event.Bus
	eligibility EligibilityProvider
	rng         func() float64 // Injectable for testing
}

// NewService creates a new game service
func NewService(
	rounds *round.Service,
	shopSvc *shop.Service,
	generator *reel.Generator,
	sessions *SessionManager,
	st store.Store,
	publisher event.Bus,
	eligibility EligibilityProvider,
) Service {
	return &service{
		rounds:      rounds,
		shop:        shopSvc,
		generator:   generator,
		sessions:    sessions,
		store:       st,
		publisher:   publisher,
		eligibility: eligibility,
		rng:         utils.RandomFloat,
	}
}

// NewGame starts a fresh session with round-1 state and an initial shop.
func (s *service) NewGame(ctx context.Context) (*Snapshot, error) {
	sessionID := logger.GenerateSessionID()
	state := s.rounds.NewGame(sessionID)
	state.ShopOffers = s.shop.GenerateOffers(state, s.eligibleSet(ctx, sessionID))

	session := &Session{state: state}
	s.sessions.Put(session)
	s.save(ctx, state)

	return newSnapshot(state)
}

// GetSnapshot returns the current read-only view of a session.
func (s *service) GetSnapshot(ctx context.Context, sessionID string) (*Snapshot, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state := session.Lock()
	defer session.Unlock()
	return newSnapshot(state)
}

// Spin resolves one spin as a single transaction: draw the grid, arbitrate
// the curse, otherwise score patterns, apply payout and decay, and roll the
// bonus respin. A bonus spin does not consume the spin budget.
func (s *service) Spin(ctx context.Context, sessionID string, bonus bool) (*domain.SpinOutcome, *Snapshot, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	// Busy gate: a spin arriving while another is mid-resolution is
	// rejected rather than queued behind it.
	state, ok := session.TryLock()
	if !ok {
		return nil, nil, fmt.Errorf("%w: spin already in progress", domain.ErrInvalidAction)
	}
	defer session.Unlock()

	if state.GameOver {
		return nil, nil, domain.ErrTerminalState
	}
	if state.Phase != domain.PhasePlaying {
		return nil, nil, domain.ErrInvalidAction
	}

	// A rewind consumes its armed flag instead of a spin from the budget.
	if state.RerollArmed {
		state.RerollArmed = false
		bonus = true
	}

	if !bonus {
		if state.SpinsLeft <= 0 {
			return nil, nil, domain.ErrInvalidAction
		}
		state.SpinsLeft--
	}

	weights := reel.ResolveWeights(state.PermanentBonuses, state.ActiveEffects)
	injectWild := state.WildNext || s.hasActiveWild(state)
	state.WildNext = false

	grid := s.generator.Generate(weights, injectWild)
	state.Grid = grid

	outcome := &domain.SpinOutcome{Grid: grid}

	if payline.HasCurse(grid) {
		s.resolveCurse(ctx, state, outcome)
	} else {
		s.resolvePayout(state, outcome)
	}

	ledger.DecayActiveEffects(state)

	if !bonus && !outcome.CurseTriggered && state.Modifiers.RespinChance > 0 &&
		s.rng() < state.Modifiers.RespinChance {
		outcome.BonusRespin = true
		outcome.Message = MsgBonusRespin
	}

	s.publish(ctx, event.NewSpinCompletedEvent(state, outcome))
	s.save(ctx, state)

	snapshot, err := newSnapshot(state)
	if err != nil {
		return nil, nil, err
	}
	return outcome, snapshot, nil
}

func (s *service) resolveCurse(ctx context.Context, state *domain.GameState, outcome *domain.SpinOutcome) {
	skulls := state.Grid.CountSymbol(domain.SymbolSkull)
	res := payline.ResolveCurse(state)

	outcome.CurseTriggered = true
	outcome.CurseResolution = res.Outcome
	outcome.Payout = res.Award
	outcome.Message = curseMessage(res.Outcome)

	s.publish(ctx, event.NewCurseTriggeredEvent(state, res.Outcome, skulls))
}

func (s *service) resolvePayout(state *domain.GameState, outcome *domain.SpinOutcome) {
	result := payline.Evaluate(state.Grid, state.Modifiers)

	payout := result.Payout
	if payout > 0 && state.DoubleNextWin {
		payout *= 2
		state.DoubleNextWin = false
	}
	payout += state.Modifiers.SpinCoinBonus

	state.Credits += payout

	outcome.Payout = payout
	outcome.WinningCells = result.WinningCells
	outcome.MatchedPatterns = result.Matched
	outcome.Message = spinMessage(result)
}

// hasActiveWild reports whether any running ticket effect injects wilds.
func (s *service) hasActiveWild(state *domain.GameState) bool {
	for id, remaining := range state.ActiveEffects {
		if remaining <= 0 {
			continue
		}
		if item, ok := catalog.TicketItemByID(id); ok && item.Effect.Kind == domain.EffectWildInjection {
			return true
		}
	}
	return false
}

// BuyCoinItem purchases a coin item with credits.
func (s *service) BuyCoinItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		if err := ledger.BuyCoinItem(state, itemID); err != nil {
			return err
		}
		item, _ := catalog.CoinItemByID(itemID)
		s.publish(ctx, event.NewItemPurchasedEvent(sessionID, itemID, PurchaseKindCoin, item.Price))
		return nil
	})
}

// UseCoinItem consumes one owned coin item.
func (s *service) UseCoinItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		if err := ledger.UseCoinItem(state, itemID); err != nil {
			return err
		}
		metrics.ItemsUsed.WithLabelValues(itemID).Inc()
		return nil
	})
}

// BuyTicketItem purchases a ticket item with tickets.
func (s *service) BuyTicketItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		if err := ledger.BuyTicketItem(state, itemID); err != nil {
			return err
		}
		item, _ := catalog.TicketItemByID(itemID)
		s.publish(ctx, event.NewItemPurchasedEvent(sessionID, itemID, PurchaseKindTicket, item.Price))
		return nil
	})
}

// UseTicketItem activates or consumes an owned ticket item.
func (s *service) UseTicketItem(ctx context.Context, sessionID, itemID string) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		if err := ledger.UseTicketItem(state, itemID); err != nil {
			return err
		}
		metrics.ItemsUsed.WithLabelValues(itemID).Inc()
		return nil
	})
}

// PurchaseTalisman buys a talisman from the current shop offers.
func (s *service) PurchaseTalisman(ctx context.Context, sessionID, talismanID string) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		talisman, ok := catalog.TalismanByID(talismanID)
		if !ok {
			return domain.ErrTalismanNotFound
		}
		if err := s.shop.PurchaseTalisman(state, talismanID); err != nil {
			return err
		}
		s.publish(ctx, event.NewItemPurchasedEvent(sessionID, talismanID, PurchaseKindTalisman, talisman.Price))
		return nil
	})
}

// RerollShop regenerates the shop offers for an escalating credit price.
func (s *service) RerollShop(ctx context.Context, sessionID string) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		return s.shop.Reroll(state, s.eligibleSet(ctx, sessionID))
	})
}

// MakePayment pays down the round's debt.
func (s *service) MakePayment(ctx context.Context, sessionID string, amount int) (ledger.PaymentResult, *Snapshot, error) {
	var result ledger.PaymentResult
	snapshot, err := s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		var payErr error
		result, payErr = ledger.MakePayment(state, amount)
		return payErr
	})
	return result, snapshot, err
}

// SelectDifficulty resolves the pending difficulty choice for the day.
func (s *service) SelectDifficulty(ctx context.Context, sessionID string, risky bool) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		return s.rounds.SelectDifficulty(state, risky)
	})
}

// SelectPhoneBonus resolves the phone-call choice and rolls the next round's
// shop offers.
func (s *service) SelectPhoneBonus(ctx context.Context, sessionID, bonusID string) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		if err := s.rounds.SelectPhoneBonus(state, bonusID); err != nil {
			return err
		}
		state.ShopOffers = s.shop.GenerateOffers(state, s.eligibleSet(ctx, sessionID))
		return nil
	})
}

// EndDay closes the day; round clears and game over are reported outward.
func (s *service) EndDay(ctx context.Context, sessionID string) (*Snapshot, error) {
	return s.transact(ctx, sessionID, func(ctx context.Context, state *domain.GameState) error {
		if err := s.rounds.EndDay(state); err != nil {
			return err
		}

		switch state.Phase {
		case domain.PhasePhoneChoice:
			s.publish(ctx, event.NewRoundClearedEvent(state, state.RoundRewardTickets))
		case domain.PhaseGameOver:
			s.publish(ctx, event.NewGameOverEvent(state))
			s.recordResult(ctx, state)
		}
		return nil
	})
}

// Restart resets the session to a fresh round-1 run.
func (s *service) Restart(ctx context.Context, sessionID string) (*Snapshot, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state := session.Lock()
	defer session.Unlock()

	s.rounds.Restart(state)
	state.ShopOffers = s.shop.GenerateOffers(state, s.eligibleSet(ctx, sessionID))
	s.save(ctx, state)
	return newSnapshot(state)
}

// TopResults returns the leaderboard of finished runs.
func (s *service) TopResults(ctx context.Context, limit int) ([]store.LeaderboardEntry, error) {
	return s.store.TopResults(ctx, limit)
}

// transact runs one mutating intent under the session lock: terminal-state
// guard, the operation itself, autosave, snapshot. A rejected precondition
// leaves the state untouched.
func (s *service) transact(ctx context.Context, sessionID string, op func(context.Context, *domain.GameState) error) (*Snapshot, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state := session.Lock()
	defer session.Unlock()

	if state.GameOver {
		return nil, domain.ErrTerminalState
	}
	if err := op(ctx, state); err != nil {
		return nil, err
	}

	s.save(ctx, state)
	return newSnapshot(state)
}

// save persists the session. Persistence failures are logged and played
// through; the engine stays fully playable with zero backend connectivity.
func (s *service) save(ctx context.Context, state *domain.GameState) {
	if err := s.store.SaveState(ctx, state); err != nil {
		logger.FromContext(ctx).Warn(LogMsgSaveFailed, "error", err)
	}
}

func (s *service) recordResult(ctx context.Context, state *domain.GameState) {
	entry := store.LeaderboardEntry{
		SessionID:    state.SessionID,
		FinalCredits: state.Credits,
		RoundReached: state.Round,
		CurseCount:   state.CurseCount,
		CreatedAt:    time.Now(),
	}
	if err := s.store.RecordResult(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn(LogMsgResultFailed, "error", err)
	}
}

// eligibleSet fetches the external talisman eligibility set. Collaborator
// failures fall back to nil, which allows everything.
func (s *service) eligibleSet(ctx context.Context, sessionID string) map[string]bool {
	if s.eligibility == nil {
		return nil
	}
	eligible, err := s.eligibility.EligibleTalismans(ctx, sessionID)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgEligibilityFailed, "error", err)
		return nil
	}
	return eligible
}

// publish reports an event outward, fire-and-forget.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	// The resilient publisher wrapping the bus never returns an error for
	// accepted events; anything else is not the engine's problem.
	_ = s.publisher.Publish(ctx, evt)
}

func curseMessage(outcome string) string {
	switch outcome {
	case domain.CurseResolutionProtected:
		return MsgCurseProtected
	case domain.CurseResolutionAbsorbed:
		return MsgCurseAbsorbed
	case domain.CurseResolutionShielded:
		return MsgCurseShielded
	case domain.CurseResolutionSynergy:
		return MsgCurseSynergy
	default:
		return MsgCurseWiped
	}
}

func spinMessage(result payline.MatchResult) string {
	if result.Payout <= 0 {
		return MsgSpinNoWin
	}
	for _, id := range result.Matched {
		if pattern, ok := catalog.PatternByID(id); ok && pattern.IsJackpot {
			return MsgSpinJackpot
		}
	}
	return MsgSpinWin
}
