// Package reel resolves effective symbol weights and draws spin grids.
package reel

import (
	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// WeightedSymbol is a symbol with its effective draw weight after modifiers.
type WeightedSymbol struct {
	domain.Symbol
	Weight float64
}

// ResolveWeights computes the effective weight table from the base symbols,
// the active permanent bonus ids, and the active ticket-effect countdowns.
// Deltas accumulate additively; probability overrides replace the current
// weight outright. Weights are never clamped or renormalized here - the
// sampler consumes them raw.
func ResolveWeights(bonusIDs []string, activeEffects map[string]int) []WeightedSymbol {
	weights := make([]WeightedSymbol, len(catalog.Symbols))
	for i, s := range catalog.Symbols {
		weights[i] = WeightedSymbol{Symbol: s, Weight: s.Probability}
	}

	for _, id := range bonusIDs {
		bonus, ok := catalog.PhoneBonusByID(id)
		if !ok {
			continue
		}
		for _, effect := range bonus.Effects {
			if effect.Kind == domain.EffectProbabilityDelta {
				addWeight(weights, effect.Symbol, effect.Value)
			}
		}
	}

	// Active effects override after deltas: a lucky charm pins the clover
	// weight regardless of buffs.
	for id, remaining := range activeEffects {
		if remaining <= 0 {
			continue
		}
		effect, ok := effectForItem(id)
		if !ok {
			continue
		}
		if effect.Kind == domain.EffectProbabilityOverride {
			setWeight(weights, effect.Symbol, effect.Value)
		}
	}

	return weights
}

// TotalWeight sums the raw weights. The sum may exceed 1.0 when buffs stack.
func TotalWeight(weights []WeightedSymbol) float64 {
	total := 0.0
	for _, w := range weights {
		total += w.Weight
	}
	return total
}

// DisplayProbabilities normalizes weights for UI display only. The sampler
// never uses these values. Pure function of its inputs.
func DisplayProbabilities(bonusIDs []string, activeEffects map[string]int) map[domain.SymbolID]float64 {
	weights := ResolveWeights(bonusIDs, activeEffects)
	total := TotalWeight(weights)

	display := make(map[domain.SymbolID]float64, len(weights))
	for _, w := range weights {
		if total > 0 {
			display[w.ID] = w.Weight / total
		} else {
			display[w.ID] = 0
		}
	}
	return display
}

// effectForItem resolves the effect definition behind an active-effect key,
// which may come from a ticket item or a coin item.
func effectForItem(id string) (domain.Effect, bool) {
	if item, ok := catalog.TicketItemByID(id); ok {
		return item.Effect, true
	}
	if item, ok := catalog.CoinItemByID(id); ok {
		return item.Effect, true
	}
	return domain.Effect{}, false
}

func addWeight(weights []WeightedSymbol, id domain.SymbolID, delta float64) {
	for i := range weights {
		if weights[i].ID == id {
			weights[i].Weight += delta
			return
		}
	}
}

func setWeight(weights []WeightedSymbol, id domain.SymbolID, value float64) {
	for i := range weights {
		if weights[i].ID == id {
			weights[i].Weight = value
			return
		}
	}
}
