package payline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// fillGrid builds a grid from a 15-symbol layout.
func fillGrid(t *testing.T, cells ...domain.SymbolID) domain.Grid {
	t.Helper()
	require.Len(t, cells, domain.GridSize)
	var grid domain.Grid
	copy(grid[:], cells)
	return grid
}

// mixedRow returns five distinct non-matching symbols.
func mixedRow() []domain.SymbolID {
	return []domain.SymbolID{domain.SymbolLemon, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven}
}

func gridWithTopRow(t *testing.T, top ...domain.SymbolID) domain.Grid {
	t.Helper()
	require.Len(t, top, 5)
	cells := append([]domain.SymbolID{}, top...)
	cells = append(cells, mixedRow()...)
	cells = append(cells, domain.SymbolClover, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven)
	return fillGrid(t, cells...)
}

func TestCheckPattern_UniformRowWins(t *testing.T) {
	grid := gridWithTopRow(t, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry)
	pattern, _ := catalog.PatternByID("top_row")

	target, ok := CheckPattern(grid, pattern)

	require.True(t, ok)
	assert.Equal(t, domain.SymbolCherry, target.ID)
}

func TestCheckPattern_WildSubstitutes(t *testing.T) {
	grid := gridWithTopRow(t, domain.SymbolWild, domain.SymbolBell, domain.SymbolWild, domain.SymbolBell, domain.SymbolBell)
	pattern, _ := catalog.PatternByID("top_row")

	target, ok := CheckPattern(grid, pattern)

	require.True(t, ok)
	assert.Equal(t, domain.SymbolBell, target.ID, "target is the first non-wild symbol in cell order")
}

func TestCheckPattern_MismatchLoses(t *testing.T) {
	grid := gridWithTopRow(t, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolLemon, domain.SymbolCherry, domain.SymbolCherry)
	pattern, _ := catalog.PatternByID("top_row")

	_, ok := CheckPattern(grid, pattern)

	assert.False(t, ok)
}

func TestCheckPattern_AllWildNeedsThree(t *testing.T) {
	threeWilds := fillGrid(t,
		domain.SymbolWild, domain.SymbolWild, domain.SymbolWild, domain.SymbolLemon, domain.SymbolBell,
		domain.SymbolLemon, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
		domain.SymbolClover, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
	)
	pattern, _ := catalog.PatternByID("top_left")

	target, ok := CheckPattern(threeWilds, pattern)

	require.True(t, ok)
	assert.Equal(t, domain.SymbolWild, target.ID)
	assert.Zero(t, target.Value, "all-wild match pays nothing by base value")
}

func TestEvaluate_TopRowScenario(t *testing.T) {
	// Spec scenario: cherry top row, mixed rows below -> 2 x 1 x 10 = 20,
	// winning cells exactly the top row, sub-triples suppressed.
	grid := fillGrid(t,
		domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry,
		domain.SymbolLemon, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
		domain.SymbolClover, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
	)

	result := Evaluate(grid, domain.Modifiers{})

	assert.Equal(t, 20, result.Payout)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, result.WinningCells)
	assert.Equal(t, []string{"top_row"}, result.Matched)
}

func TestEvaluate_GoldenBoostRaisesPayout(t *testing.T) {
	grid := fillGrid(t,
		domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry,
		domain.SymbolLemon, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
		domain.SymbolClover, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
	)
	mods := domain.Modifiers{SymbolValueBoost: map[domain.SymbolID]int{domain.SymbolCherry: 1}}

	result := Evaluate(grid, mods)

	assert.Equal(t, 30, result.Payout, "(2+1) x 1 x 10")
}

func TestEvaluate_GlassCannonFloorsEachPattern(t *testing.T) {
	grid := fillGrid(t,
		domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry, domain.SymbolCherry,
		domain.SymbolLemon, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
		domain.SymbolClover, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
	)
	mods := domain.Modifiers{PayoutMultiplier: catalog.GlassCannonMultiplier}

	result := Evaluate(grid, mods)

	assert.Equal(t, 30, result.Payout, "floor(20 x 1.5)")
}

func TestEvaluate_SubTripleWithoutFullRow(t *testing.T) {
	grid := fillGrid(t,
		domain.SymbolBell, domain.SymbolBell, domain.SymbolBell, domain.SymbolLemon, domain.SymbolCherry,
		domain.SymbolLemon, domain.SymbolCherry, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
		domain.SymbolClover, domain.SymbolCherry, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
	)

	result := Evaluate(grid, domain.Modifiers{})

	assert.Equal(t, []string{"top_left"}, result.Matched)
	assert.Equal(t, 25, result.Payout, "5 x 0.5 x 10")
	assert.Equal(t, []int{0, 1, 2}, result.WinningCells)
}

func TestEvaluate_JackpotKeepsLastMatchOnly(t *testing.T) {
	// A uniform grid matches every pattern including both jackpot shapes;
	// only x_shape (last in table order) may pay among jackpots.
	var grid domain.Grid
	for i := range grid {
		grid[i] = domain.SymbolSeven
	}

	result := Evaluate(grid, domain.Modifiers{})

	assert.Contains(t, result.Matched, "x_shape")
	assert.NotContains(t, result.Matched, "crown")

	// All 15 cells contribute across the matched shapes.
	assert.Len(t, result.WinningCells, domain.GridSize)

	// Non-jackpot payout: rows (3 x 15x1x10) + V/zig-zag/W shapes
	// (15x2x10 x2 + 15x3x10 x2 + 15x5x10) plus the single deferred jackpot
	// (15x10x10). Sub-triples are excluded by the full rows.
	expected := 3*150 + 2*300 + 2*450 + 750 + 1500
	assert.Equal(t, expected, result.Payout)
}

func TestEvaluate_SkullLinesNeverPay(t *testing.T) {
	grid := fillGrid(t,
		domain.SymbolSkull, domain.SymbolSkull, domain.SymbolSkull, domain.SymbolLemon, domain.SymbolBell,
		domain.SymbolLemon, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
		domain.SymbolClover, domain.SymbolBell, domain.SymbolDiamond, domain.SymbolCoin, domain.SymbolSeven,
	)

	result := Evaluate(grid, domain.Modifiers{})

	assert.Zero(t, result.Payout)
	assert.Empty(t, result.Matched)
}
