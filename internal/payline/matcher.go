// Package payline evaluates spin grids: pattern payouts and curse arbitration.
package payline

import (
	"math"
	"sort"

	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// MatchResult is the aggregated payout of one grid evaluation.
type MatchResult struct {
	Payout       int
	WinningCells []int
	Matched      []string // non-suppressed pattern ids, in table order
}

// patternWin is one matched pattern before exclusion filtering.
type patternWin struct {
	pattern domain.Pattern
	target  domain.Symbol
}

// CheckPattern resolves a single pattern against the grid. The target is the
// first non-wild symbol in cell order; a pattern wins iff every cell equals
// the target or is wild. An all-wild pattern needs at least 3 wild cells and
// targets the wild symbol itself (value 0, so it pays nothing).
func CheckPattern(grid domain.Grid, pattern domain.Pattern) (domain.Symbol, bool) {
	var target domain.Symbol
	haveTarget := false
	wilds := 0

	for _, cell := range pattern.Cells {
		id := grid[cell]
		if id == domain.SymbolWild {
			wilds++
			continue
		}
		if !haveTarget {
			sym, ok := catalog.SymbolByID(id)
			if !ok {
				return domain.Symbol{}, false
			}
			target = sym
			haveTarget = true
			continue
		}
		if id != target.ID {
			return domain.Symbol{}, false
		}
	}

	if !haveTarget {
		if wilds < catalog.MinWildsForAllWild {
			return domain.Symbol{}, false
		}
		wild, _ := catalog.SymbolByID(domain.SymbolWild)
		return wild, true
	}
	return target, true
}

// Evaluate aggregates every matched pattern into a single payout:
//  1. match all patterns and build the exclusion set from matched patterns'
//     excludes lists,
//  2. accumulate non-jackpot payouts, deferring jackpots into a single slot
//     where only the last match survives,
//  3. scale each individual payout by the glass-cannon multiplier (floored)
//     when active,
//  4. union all contributing cells, deduplicated, jackpot cells included.
//
// payoutScale fixes a pattern payout at (value + boost) x multiplier x 10.
func Evaluate(grid domain.Grid, mods domain.Modifiers) MatchResult {
	var wins []patternWin
	excluded := make(map[string]bool)

	for _, pattern := range catalog.Patterns {
		target, ok := CheckPattern(grid, pattern)
		if !ok {
			continue
		}
		wins = append(wins, patternWin{pattern: pattern, target: target})
		for _, id := range pattern.Excludes {
			excluded[id] = true
		}
	}

	result := MatchResult{}
	cells := make(map[int]bool)
	var jackpot *patternWin

	for i := range wins {
		win := wins[i]
		if excluded[win.pattern.ID] {
			continue
		}
		if win.target.Value < 0 {
			// Curse-symbol lines never pay; the curse resolver owns them.
			continue
		}
		if win.pattern.IsJackpot {
			// Only the last jackpot match encountered is kept.
			jackpot = &wins[i]
			continue
		}
		result.Payout += patternPayout(win, mods)
		result.Matched = append(result.Matched, win.pattern.ID)
		for _, cell := range win.pattern.Cells {
			cells[cell] = true
		}
	}

	if jackpot != nil {
		result.Payout += patternPayout(*jackpot, mods)
		result.Matched = append(result.Matched, jackpot.pattern.ID)
		for _, cell := range jackpot.pattern.Cells {
			cells[cell] = true
		}
	}

	result.WinningCells = sortedCells(cells)
	return result
}

func patternPayout(win patternWin, mods domain.Modifiers) int {
	boost := mods.SymbolValueBoost[win.target.ID]
	payout := float64(win.target.Value+boost) * win.pattern.Multiplier * catalog.PayoutScale
	if mods.PayoutMultiplier > 0 {
		payout = math.Floor(payout * mods.PayoutMultiplier)
	}
	return int(math.Floor(payout))
}

func sortedCells(cells map[int]bool) []int {
	if len(cells) == 0 {
		return nil
	}
	out := make([]int, 0, len(cells))
	for cell := range cells {
		out = append(out, cell)
	}
	sort.Ints(out)
	return out
}
