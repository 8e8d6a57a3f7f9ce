package reel

import (
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
	"github.com/farrow-dev/SkullPit_Go/internal/utils"
)

// Generator draws spin grids from a resolved weight table.
type Generator struct {
	rng func() float64 // Injectable for testing
}

// NewGenerator creates a grid generator backed by the default RNG.
func NewGenerator() *Generator {
	return &Generator{rng: utils.RandomFloat}
}

// NewGeneratorWithRNG creates a generator with an injected RNG, used in tests.
func NewGeneratorWithRNG(rng func() float64) *Generator {
	return &Generator{rng: rng}
}

// Draw performs one cumulative-weight draw: r uniform in [0, totalWeight),
// subtract each symbol's weight in table order, first symbol where the
// remainder drops to or below zero wins. Falls back to the first symbol on
// rounding edge cases.
func (g *Generator) Draw(weights []WeightedSymbol) domain.SymbolID {
	r := g.rng() * TotalWeight(weights)
	for _, w := range weights {
		r -= w.Weight
		if r <= 0 && w.Weight > 0 {
			return w.ID
		}
	}
	return weights[0].ID
}

// Generate draws the full 15-cell grid. When injectWild is set, exactly one
// uniformly random cell is overwritten with the wild symbol after generation;
// a just-drawn curse symbol can be overwritten, there is no exclusion logic.
func (g *Generator) Generate(weights []WeightedSymbol, injectWild bool) domain.Grid {
	var grid domain.Grid
	for i := range grid {
		grid[i] = g.Draw(weights)
	}

	if injectWild {
		cell := int(g.rng() * float64(domain.GridSize))
		if cell >= domain.GridSize {
			cell = domain.GridSize - 1
		}
		grid[cell] = domain.SymbolWild
	}

	return grid
}
