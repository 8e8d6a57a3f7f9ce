package reel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

func TestResolveWeights_Base(t *testing.T) {
	weights := ResolveWeights(nil, nil)

	require.Len(t, weights, len(catalog.Symbols))
	assert.InDelta(t, 1.0, TotalWeight(weights), 1e-9, "base non-wild weights sum to 1.0")

	for _, w := range weights {
		if w.ID == domain.SymbolWild {
			assert.Zero(t, w.Weight, "wild is never drawn randomly")
		}
	}
}

func TestResolveWeights_BuffDeltas(t *testing.T) {
	weights := ResolveWeights([]string{catalog.BonusBuffCherryUp, catalog.BonusBuffSevenUp}, nil)

	assert.InDelta(t, 0.220+0.05, weightOf(t, weights, domain.SymbolCherry), 1e-9)
	assert.InDelta(t, 0.051+0.02, weightOf(t, weights, domain.SymbolSeven), 1e-9)
	// Total may exceed 1.0; no renormalization before sampling
	assert.Greater(t, TotalWeight(weights), 1.0)
}

func TestResolveWeights_CursedLuckPairsSkullAndSeven(t *testing.T) {
	weights := ResolveWeights([]string{catalog.BonusRiskCursedLuck}, nil)

	assert.InDelta(t, 0.070+0.02, weightOf(t, weights, domain.SymbolSkull), 1e-9)
	assert.InDelta(t, 0.051+0.02, weightOf(t, weights, domain.SymbolSeven), 1e-9)
}

func TestResolveWeights_LuckyCharmOverridesClover(t *testing.T) {
	active := map[string]int{catalog.CoinItemLuckyCharm: 2}

	weights := ResolveWeights(nil, active)

	assert.InDelta(t, catalog.LuckyCharmCloverProbability, weightOf(t, weights, domain.SymbolClover), 1e-9,
		"override replaces the base 0.149, not additive")
}

func TestResolveWeights_OverrideBeatsBuff(t *testing.T) {
	active := map[string]int{catalog.TicketItemCloverOil: 1}

	weights := ResolveWeights([]string{catalog.BonusBuffCloverUp}, active)

	assert.InDelta(t, catalog.LuckyCharmCloverProbability, weightOf(t, weights, domain.SymbolClover), 1e-9)
}

func TestResolveWeights_ExpiredEffectIgnored(t *testing.T) {
	active := map[string]int{catalog.CoinItemLuckyCharm: 0}

	weights := ResolveWeights(nil, active)

	assert.InDelta(t, 0.149, weightOf(t, weights, domain.SymbolClover), 1e-9)
}

func TestDisplayProbabilities_NormalizedAndIdempotent(t *testing.T) {
	bonuses := []string{catalog.BonusBuffCherryUp, catalog.BonusRiskCursedLuck}
	active := map[string]int{catalog.TicketItemCloverOil: 3}

	first := DisplayProbabilities(bonuses, active)
	second := DisplayProbabilities(bonuses, active)

	assert.Equal(t, first, second, "pure function of bonuses/effects")

	sum := 0.0
	for _, p := range first {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9, "display probabilities normalize to 1.0")
}

func TestGenerate_FillsAllCells(t *testing.T) {
	g := NewGenerator()
	weights := ResolveWeights(nil, nil)

	grid := g.Generate(weights, false)

	for i, cell := range grid {
		assert.NotEmpty(t, cell, "cell %d must hold a symbol", i)
		assert.NotEqual(t, domain.SymbolWild, cell, "wild is never drawn")
	}
}

func TestGenerate_WildInjectionOverwritesExactlyOneCell(t *testing.T) {
	g := NewGenerator()
	weights := ResolveWeights(nil, nil)

	grid := g.Generate(weights, true)

	assert.Equal(t, 1, grid.CountSymbol(domain.SymbolWild))
}

func TestDraw_FrequenciesConvergeToWeights(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	g := NewGeneratorWithRNG(src.Float64)
	weights := ResolveWeights(nil, nil)
	total := TotalWeight(weights)

	const draws = 200000
	counts := make(map[domain.SymbolID]int)
	for i := 0; i < draws; i++ {
		counts[g.Draw(weights)]++
	}

	// Pearson chi-squared against expected frequencies. 7 degrees of freedom
	// (8 drawable symbols); critical value at p=0.001 is 24.32.
	chi2 := 0.0
	for _, w := range weights {
		if w.Weight == 0 {
			assert.Zero(t, counts[w.ID], "zero-weight symbol must never be drawn")
			continue
		}
		expected := float64(draws) * w.Weight / total
		diff := float64(counts[w.ID]) - expected
		chi2 += diff * diff / expected
	}
	assert.Less(t, chi2, 24.32, "observed frequencies diverge from the weight table")
}

func weightOf(t *testing.T, weights []WeightedSymbol, id domain.SymbolID) float64 {
	t.Helper()
	for _, w := range weights {
		if w.ID == id {
			return w.Weight
		}
	}
	t.Fatalf("symbol %s not in weight table", id)
	return 0
}
