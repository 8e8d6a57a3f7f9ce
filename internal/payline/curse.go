package payline

import (
	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// CurseResolution is the arbitrated outcome of a cursed grid.
type CurseResolution struct {
	Outcome string // one of the domain.CurseResolution* constants
	Award   int    // synergy payout, zero otherwise
}

// HasCurse reports the curse condition: curse-symbol count at or above the
// threshold, independent of position. A simple count, not a pattern match.
func HasCurse(grid domain.Grid) bool {
	return grid.CountSymbol(domain.SymbolSkull) >= catalog.CurseThreshold
}

// ResolveCurse arbitrates a triggered curse against the protection stack.
// Priority order, first match wins, mutually exclusive:
//  1. permanent protection talisman - curse fully negated
//  2. one-time absorb flag - negated, flag cleared
//  3. coin-item shield - negated, one unit decremented
//  4. curse-synergy bonus - pays curseBonus + curseCount x 10 instead of wiping
//  5. nothing - credits reset to exactly 0
//
// Every branch ends the spin without computing pattern payout; the caller
// still consumes the spin cost.
func ResolveCurse(state *domain.GameState) CurseResolution {
	if state.Modifiers.CurseProtection {
		unlock(state, domain.AchievementSurvivor)
		return CurseResolution{Outcome: domain.CurseResolutionProtected}
	}

	if state.CurseAbsorbOnce {
		state.CurseAbsorbOnce = false
		unlock(state, domain.AchievementSurvivor)
		return CurseResolution{Outcome: domain.CurseResolutionAbsorbed}
	}

	if state.CoinItems[catalog.CoinItemHolyShield] > 0 {
		state.CoinItems[catalog.CoinItemHolyShield]--
		unlock(state, domain.AchievementSurvivor)
		return CurseResolution{Outcome: domain.CurseResolutionShielded}
	}

	if state.Modifiers.CurseBonus > 0 {
		award := state.Modifiers.CurseBonus + state.CurseCount*catalog.CurseCountPayoutStep
		state.Credits += award
		state.CurseCount++
		return CurseResolution{Outcome: domain.CurseResolutionSynergy, Award: award}
	}

	state.Credits = 0
	state.CurseCount++
	unlock(state, domain.AchievementCursed)
	return CurseResolution{Outcome: domain.CurseResolutionWiped}
}

func unlock(state *domain.GameState, achievement string) {
	if state.Achievements == nil {
		state.Achievements = make(map[string]bool)
	}
	state.Achievements[achievement] = true
}
