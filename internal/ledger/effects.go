// Package ledger tracks the modifier economy: coin items, ticket items,
// talisman effect accumulation, active-effect decay, and debt payments.
package ledger

import (
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// ApplyEffect merges one tagged effect into the game state. This is the
// single interpreter for every item, talisman, and phone-bonus effect;
// adding an item means adding a table row, not a new branch elsewhere.
//
// Probability effects are not applied here: the symbol weight resolver reads
// them from the owning bonus/active-effect ids at spin time.
func ApplyEffect(state *domain.GameState, effect domain.Effect) {
	switch effect.Kind {
	case domain.EffectAddCredits:
		state.Credits += effect.Amount
	case domain.EffectAddTickets:
		state.Tickets += effect.Amount
	case domain.EffectAddSpins:
		state.SpinsLeft += effect.Amount
	case domain.EffectSymbolValueBoost:
		if state.Modifiers.SymbolValueBoost == nil {
			state.Modifiers.SymbolValueBoost = make(map[domain.SymbolID]int)
		}
		state.Modifiers.SymbolValueBoost[effect.Symbol] += effect.Amount
	case domain.EffectCurseProtection:
		state.Modifiers.CurseProtection = true
	case domain.EffectCurseAbsorbOnce:
		state.CurseAbsorbOnce = true
	case domain.EffectCurseBonus:
		state.Modifiers.CurseBonus += effect.Amount
	case domain.EffectSpinCoinBonus:
		state.Modifiers.SpinCoinBonus += effect.Amount
	case domain.EffectDailyCredits:
		state.Modifiers.DailyCredits += effect.Amount
	case domain.EffectDailyTickets:
		state.Modifiers.DailyTickets += effect.Amount
	case domain.EffectRespinChance:
		// Flag-set, not additive: ownership is unique so stacking is impossible.
		state.Modifiers.RespinChance = effect.Value
	case domain.EffectShopDiscount:
		state.Modifiers.ShopDiscount = effect.Value
	case domain.EffectPayoutMultiplier:
		state.Modifiers.PayoutMultiplier = effect.Value
	case domain.EffectDoubleNextWin:
		state.DoubleNextWin = true
	case domain.EffectWildInjection:
		state.WildNext = true
	case domain.EffectRerollLastSpin:
		state.RerollArmed = true
	case domain.EffectProbabilityDelta, domain.EffectProbabilityOverride:
		// Consulted by the weight resolver, nothing to merge.
	}
}

// DecayActiveEffects decrements every active ticket-effect countdown by one
// spin and removes exhausted entries.
func DecayActiveEffects(state *domain.GameState) {
	for id, remaining := range state.ActiveEffects {
		if remaining <= 1 {
			delete(state.ActiveEffects, id)
			continue
		}
		state.ActiveEffects[id] = remaining - 1
	}
}
