package catalog

import "github.com/farrow-dev/SkullPit_Go/internal/domain"

// Patterns is the static pattern table. Cell indices address the 5x3 grid
// row-major: 0-4 top, 5-9 middle, 10-14 bottom. Full rows exclude their
// sub-triples so a five-cell line does not also pay its halves.
var Patterns = []domain.Pattern{
	// Horizontal triples
	{ID: "top_left", Cells: []int{0, 1, 2}, Multiplier: 0.5},
	{ID: "top_right", Cells: []int{2, 3, 4}, Multiplier: 0.5},
	{ID: "middle_left", Cells: []int{5, 6, 7}, Multiplier: 0.5},
	{ID: "middle_right", Cells: []int{7, 8, 9}, Multiplier: 0.5},
	{ID: "bottom_left", Cells: []int{10, 11, 12}, Multiplier: 0.5},
	{ID: "bottom_right", Cells: []int{12, 13, 14}, Multiplier: 0.5},

	// Full horizontal lines
	{ID: "top_row", Cells: []int{0, 1, 2, 3, 4}, Multiplier: 1, Excludes: []string{"top_left", "top_right"}},
	{ID: "middle_row", Cells: []int{5, 6, 7, 8, 9}, Multiplier: 1, Excludes: []string{"middle_left", "middle_right"}},
	{ID: "bottom_row", Cells: []int{10, 11, 12, 13, 14}, Multiplier: 1, Excludes: []string{"bottom_left", "bottom_right"}},

	// V shapes
	{ID: "v_shape", Cells: []int{0, 6, 12, 8, 4}, Multiplier: 2},
	{ID: "inverse_v", Cells: []int{10, 6, 2, 8, 14}, Multiplier: 2},

	// Zig-zags
	{ID: "zigzag_high", Cells: []int{0, 6, 2, 8, 4}, Multiplier: 3},
	{ID: "zigzag_low", Cells: []int{10, 6, 12, 8, 14}, Multiplier: 3},

	// W shape
	{ID: "w_shape", Cells: []int{0, 11, 7, 13, 4}, Multiplier: 5},

	// Jackpot shapes: only the last matched jackpot pays, deferred into a
	// single jackpot slot during aggregation.
	{ID: "crown", Cells: []int{0, 2, 4, 6, 8}, Multiplier: 8, IsJackpot: true},
	{ID: "x_shape", Cells: []int{0, 4, 7, 10, 14}, Multiplier: 10, IsJackpot: true},
}

// PatternByID returns the pattern definition, or false if unknown.
func PatternByID(id string) (domain.Pattern, bool) {
	for _, p := range Patterns {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Pattern{}, false
}

// PayoutScale multiplies every pattern payout: (value + boost) x multiplier x 10.
const PayoutScale = 10

// GlassCannonMultiplier scales each individual pattern payout (floored) when
// the risk_glass_cannon bonus is active.
const GlassCannonMultiplier = 1.5

// MinWildsForAllWild is the minimum wild count for an all-wild pattern match.
const MinWildsForAllWild = 3

// CurseThreshold is the skull count at which the curse triggers, independent
// of position.
const CurseThreshold = 3

// CurseCountPayoutStep scales the synergy payout: curseBonus + curseCount*step.
const CurseCountPayoutStep = 10
