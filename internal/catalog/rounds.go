package catalog

import "math"

// RoundConfig is one round's goal, debt, and per-day difficulty budgets.
// Safe days grant more spins at a higher entry cost; risky days run short
// budgets for a bigger reward-ticket clear.
type RoundConfig struct {
	Goal          int
	Debt          int
	MaxDays       int
	SafeSpins     int
	RiskySpins    int
	SafeCost      int
	RiskyCost     int
	SafeTickets   int
	RiskyTickets  int
}

// Starting state
const (
	StartingCredits  = 100
	StartingTickets  = 2
	TalismanSlotsCap = 6
)

// Reward tickets are fixed per difficulty across all rounds.
const (
	SafeRewardTickets  = 3
	RiskyRewardTickets = 4
)

// roundTable covers rounds 1-10 explicitly; beyond it the configuration is
// extrapolated from round 10 (goal x1.3 per round, safe spins +5 capped at
// 100, risky spins +2 capped at 40, costs x1.2).
var roundTable = []RoundConfig{
	{Goal: 300, Debt: 300, MaxDays: 3, SafeSpins: 30, RiskySpins: 12, SafeCost: 10, RiskyCost: 5},
	{Goal: 500, Debt: 500, MaxDays: 3, SafeSpins: 35, RiskySpins: 14, SafeCost: 12, RiskyCost: 6},
	{Goal: 800, Debt: 800, MaxDays: 3, SafeSpins: 40, RiskySpins: 16, SafeCost: 14, RiskyCost: 7},
	{Goal: 1200, Debt: 1200, MaxDays: 3, SafeSpins: 45, RiskySpins: 18, SafeCost: 17, RiskyCost: 8},
	{Goal: 1800, Debt: 1800, MaxDays: 4, SafeSpins: 50, RiskySpins: 20, SafeCost: 20, RiskyCost: 10},
	{Goal: 2700, Debt: 2700, MaxDays: 4, SafeSpins: 55, RiskySpins: 22, SafeCost: 24, RiskyCost: 12},
	{Goal: 4000, Debt: 4000, MaxDays: 4, SafeSpins: 60, RiskySpins: 24, SafeCost: 29, RiskyCost: 14},
	{Goal: 6000, Debt: 6000, MaxDays: 5, SafeSpins: 65, RiskySpins: 26, SafeCost: 35, RiskyCost: 17},
	{Goal: 9000, Debt: 9000, MaxDays: 5, SafeSpins: 70, RiskySpins: 28, SafeCost: 42, RiskyCost: 20},
	{Goal: 13000, Debt: 13000, MaxDays: 5, SafeSpins: 75, RiskySpins: 30, SafeCost: 50, RiskyCost: 24},
}

// Extrapolation caps beyond round 10.
const (
	maxSafeSpins  = 100
	maxRiskySpins = 40
)

// RoundConfigFor returns the configuration for a 1-based round number.
func RoundConfigFor(round int) RoundConfig {
	if round < 1 {
		round = 1
	}
	if round <= len(roundTable) {
		cfg := roundTable[round-1]
		cfg.SafeTickets = SafeRewardTickets
		cfg.RiskyTickets = RiskyRewardTickets
		return cfg
	}

	base := roundTable[len(roundTable)-1]
	scale := round - len(roundTable)

	cfg := RoundConfig{
		Goal:         int(float64(base.Goal) * math.Pow(1.3, float64(scale))),
		MaxDays:      base.MaxDays,
		SafeSpins:    minInt(base.SafeSpins+5*scale, maxSafeSpins),
		RiskySpins:   minInt(base.RiskySpins+2*scale, maxRiskySpins),
		SafeCost:     int(float64(base.SafeCost) * math.Pow(1.2, float64(scale))),
		RiskyCost:    int(float64(base.RiskyCost) * math.Pow(1.2, float64(scale))),
		SafeTickets:  SafeRewardTickets,
		RiskyTickets: RiskyRewardTickets,
	}
	cfg.Debt = cfg.Goal
	return cfg
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
