// Package catalog holds the static game tables: symbols, patterns, items,
// talismans, phone bonuses, and round configurations.
package catalog

import "github.com/farrow-dev/SkullPit_Go/internal/domain"

// Symbols is the base symbol table in draw order. Probabilities sum to 1.0
// over the non-wild set; the weighted sampler consumes raw weights in this
// order, so the order is part of the game rules.
var Symbols = []domain.Symbol{
	{ID: domain.SymbolCherry, Icon: "🍒", Probability: 0.220, Value: 2},
	{ID: domain.SymbolLemon, Icon: "🍋", Probability: 0.200, Value: 3},
	{ID: domain.SymbolClover, Icon: "☘️", Probability: 0.149, Value: 4},
	{ID: domain.SymbolBell, Icon: "🔔", Probability: 0.140, Value: 5},
	{ID: domain.SymbolDiamond, Icon: "💎", Probability: 0.090, Value: 8},
	{ID: domain.SymbolCoin, Icon: "💰", Probability: 0.080, Value: 10},
	{ID: domain.SymbolSkull, Icon: "💀", Probability: 0.070, Value: -1},
	{ID: domain.SymbolSeven, Icon: "7️⃣", Probability: 0.051, Value: 15},
	{ID: domain.SymbolWild, Icon: "🃏", Probability: 0, Value: 0},
}

// SymbolByID returns the symbol definition, or false if unknown.
func SymbolByID(id domain.SymbolID) (domain.Symbol, bool) {
	for _, s := range Symbols {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Symbol{}, false
}

// LuckyCharmCloverProbability replaces (not adds to) the clover base weight
// while a lucky charm effect is active.
const LuckyCharmCloverProbability = 0.25

// Probability deltas granted by buff_<symbol>_up permanent phone bonuses.
const (
	BuffCommonDelta = 0.05 // cherry, lemon, clover, bell
	BuffSevenDelta  = 0.02
	CursedLuckDelta = 0.02 // applied to both skull and seven
)
