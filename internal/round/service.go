// Package round owns the day/round/debt progression state machine. Awaiting
// player input is modeled as an explicit phase so redundant endDay and spin
// intents are rejected instead of silently re-running transitions.
package round

import (
	"fmt"

	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
	"github.com/farrow-dev/SkullPit_Go/internal/ledger"
	"github.com/farrow-dev/SkullPit_Go/internal/utils"
)

// Service drives day and round transitions.
type Service struct {
	rng func() float64 // Injectable for testing
}

// NewService creates a progression service backed by the default RNG.
func NewService() *Service {
	return &Service{rng: utils.RandomFloat}
}

// NewServiceWithRNG creates a progression service with an injected RNG.
func NewServiceWithRNG(rng func() float64) *Service {
	return &Service{rng: rng}
}

// NewGame builds the initial state for a session: round-1 configuration,
// starting balances, and a pending difficulty choice for day 1.
func (s *Service) NewGame(sessionID string) *domain.GameState {
	cfg := catalog.RoundConfigFor(1)

	state := &domain.GameState{
		SessionID:       sessionID,
		Credits:         catalog.StartingCredits,
		Tickets:         catalog.StartingTickets,
		Round:           1,
		CurrentDay:      1,
		MaxDays:         cfg.MaxDays,
		CurrentGoal:     cfg.Goal,
		CurrentDebt:     cfg.Debt,
		DeadlineTurn:    cfg.MaxDays,
		TalismanSlots:   catalog.TalismanSlotsCap,
		Phase:           domain.PhaseDifficultyChoice,
		Achievements:    make(map[string]bool),
		CoinItems:       make(map[string]int),
		TicketInventory: make(map[string]int),
		PassiveItems:    make(map[string]bool),
		ActiveEffects:   make(map[string]int),
	}
	return state
}

// SelectDifficulty resolves the pending difficulty choice for the current
// day. The entry cost debits credits (clamped at zero) and the spin budget is
// set from the round configuration, plus any extra-spins phone bonus.
func (s *Service) SelectDifficulty(state *domain.GameState, risky bool) error {
	if state.GameOver {
		return domain.ErrTerminalState
	}
	if state.Phase != domain.PhaseDifficultyChoice {
		return fmt.Errorf("%w: no difficulty choice is pending", domain.ErrInvalidAction)
	}

	cfg := catalog.RoundConfigFor(state.Round)

	spins, cost, reward := cfg.SafeSpins, cfg.SafeCost, cfg.SafeTickets
	if risky {
		spins, cost, reward = cfg.RiskySpins, cfg.RiskyCost, cfg.RiskyTickets
	}
	if state.HasBonus(catalog.BonusExtraSpins) {
		spins += catalog.ExtraSpinsPerDay
	}

	state.Credits -= cost
	if state.Credits < 0 {
		state.Credits = 0
	}
	state.SpinsLeft = spins
	state.MaxSpins = spins
	state.RoundRewardTickets = reward
	state.Phase = domain.PhasePlaying
	return nil
}

// EndDay closes the current day. It is only accepted while playing with an
// exhausted spin budget. A non-final day applies the owned daily talisman
// bonuses and opens the next day's difficulty choice; the final day either
// clears the round (debt satisfied) into a phone-bonus choice, or ends the
// game.
func (s *Service) EndDay(state *domain.GameState) error {
	if state.GameOver {
		return domain.ErrTerminalState
	}
	if state.Phase != domain.PhasePlaying {
		return fmt.Errorf("%w: day end is not pending", domain.ErrInvalidAction)
	}
	if state.SpinsLeft > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAction, domain.ErrMsgSpinsRemaining)
	}

	state.CurrentTurn++

	if state.CurrentDay < state.MaxDays {
		state.CurrentDay++
		s.applyDailyBonuses(state)
		state.Phase = domain.PhaseDifficultyChoice
		return nil
	}

	if state.DebtSatisfied() {
		state.Tickets += state.RoundRewardTickets
		state.PhoneOffers = s.rollPhoneOffers()
		state.Phase = domain.PhasePhoneChoice
		return nil
	}

	state.GameOver = true
	state.Phase = domain.PhaseGameOver
	return nil
}

// SelectPhoneBonus resolves the pending phone-call choice and starts the
// next round.
func (s *Service) SelectPhoneBonus(state *domain.GameState, id string) error {
	if state.GameOver {
		return domain.ErrTerminalState
	}
	if state.Phase != domain.PhasePhoneChoice {
		return fmt.Errorf("%w: no phone call is pending", domain.ErrInvalidAction)
	}
	if !offered(state.PhoneOffers, id) {
		return fmt.Errorf("%w: %s is not offered", domain.ErrInvalidAction, id)
	}

	bonus, ok := catalog.PhoneBonusByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}

	if bonus.Permanent {
		state.PermanentBonuses = append(state.PermanentBonuses, bonus.ID)
	}
	for _, effect := range bonus.Effects {
		// Extra spins are granted per day at difficulty selection, not once
		// at pick time.
		if bonus.Permanent && effect.Kind == domain.EffectAddSpins {
			continue
		}
		ledger.ApplyEffect(state, effect)
	}

	s.startNextRound(state)
	return nil
}

// Restart resets a finished game to the initial round-1 state, keeping the
// session identity.
func (s *Service) Restart(state *domain.GameState) *domain.GameState {
	fresh := s.NewGame(state.SessionID)
	*state = *fresh
	return state
}

func (s *Service) startNextRound(state *domain.GameState) {
	state.Round++
	cfg := catalog.RoundConfigFor(state.Round)

	state.CurrentDay = 1
	state.MaxDays = cfg.MaxDays
	state.CurrentGoal = cfg.Goal
	state.CurrentDebt = cfg.Debt
	state.PaidAmount = 0
	state.DeadlineTurn = state.CurrentTurn + cfg.MaxDays
	state.SpinsLeft = 0
	state.MaxSpins = 0
	state.RoundRewardTickets = 0
	state.RerollCount = 0
	state.PhoneOffers = nil
	state.Phase = domain.PhaseDifficultyChoice
}

// applyDailyBonuses pays out the accumulated per-day talisman income when a
// non-final day closes.
func (s *Service) applyDailyBonuses(state *domain.GameState) {
	state.Credits += state.Modifiers.DailyCredits
	state.Tickets += state.Modifiers.DailyTickets
}

// rollPhoneOffers draws the random phone-call choice set without repeats.
func (s *Service) rollPhoneOffers() []string {
	pool := make([]string, len(catalog.PhoneBonuses))
	for i, b := range catalog.PhoneBonuses {
		pool[i] = b.ID
	}

	count := catalog.PhoneOfferCount
	if count > len(pool) {
		count = len(pool)
	}

	offers := make([]string, 0, count)
	for len(offers) < count {
		i := int(s.rng()*float64(len(pool))) % len(pool)
		offers = append(offers, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return offers
}

func offered(offers []string, id string) bool {
	for _, o := range offers {
		if o == id {
			return true
		}
	}
	return false
}
