package payline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

func gridWithSkulls(count int) domain.Grid {
	var grid domain.Grid
	for i := range grid {
		grid[i] = domain.SymbolLemon
	}
	for i := 0; i < count && i < domain.GridSize; i++ {
		grid[i] = domain.SymbolSkull
	}
	return grid
}

func TestHasCurse_ThresholdByCountNotPosition(t *testing.T) {
	assert.False(t, HasCurse(gridWithSkulls(0)))
	assert.False(t, HasCurse(gridWithSkulls(2)))
	assert.True(t, HasCurse(gridWithSkulls(3)))
	assert.True(t, HasCurse(gridWithSkulls(15)))

	// Scattered skulls count the same as adjacent ones
	var grid domain.Grid
	for i := range grid {
		grid[i] = domain.SymbolBell
	}
	grid[1], grid[7], grid[14] = domain.SymbolSkull, domain.SymbolSkull, domain.SymbolSkull
	assert.True(t, HasCurse(grid))
}

func TestResolveCurse_PermanentProtectionWins(t *testing.T) {
	state := &domain.GameState{
		Credits:         500,
		CurseAbsorbOnce: true,
		CoinItems:       map[string]int{catalog.CoinItemHolyShield: 1},
		Modifiers:       domain.Modifiers{CurseProtection: true, CurseBonus: 20},
	}

	res := ResolveCurse(state)

	assert.Equal(t, domain.CurseResolutionProtected, res.Outcome)
	assert.Equal(t, 500, state.Credits, "no credit loss")
	assert.True(t, state.CurseAbsorbOnce, "lower-priority protections untouched")
	assert.Equal(t, 1, state.CoinItems[catalog.CoinItemHolyShield])
	assert.Zero(t, state.CurseCount)
	assert.True(t, state.Achievements[domain.AchievementSurvivor])
}

func TestResolveCurse_AbsorbOnceClearsFlag(t *testing.T) {
	state := &domain.GameState{Credits: 300, CurseAbsorbOnce: true}

	res := ResolveCurse(state)

	assert.Equal(t, domain.CurseResolutionAbsorbed, res.Outcome)
	assert.False(t, state.CurseAbsorbOnce, "flag cleared after use")
	assert.Equal(t, 300, state.Credits)
	assert.True(t, state.Achievements[domain.AchievementSurvivor])
}

func TestResolveCurse_ShieldDecrementsOneUnit(t *testing.T) {
	state := &domain.GameState{
		Credits:   300,
		CoinItems: map[string]int{catalog.CoinItemHolyShield: 2},
	}

	res := ResolveCurse(state)

	assert.Equal(t, domain.CurseResolutionShielded, res.Outcome)
	assert.Equal(t, 1, state.CoinItems[catalog.CoinItemHolyShield])
	assert.Equal(t, 300, state.Credits)
}

func TestResolveCurse_SynergyPaysInsteadOfWiping(t *testing.T) {
	state := &domain.GameState{
		Credits:    300,
		CurseCount: 2,
		Modifiers:  domain.Modifiers{CurseBonus: 50},
	}

	res := ResolveCurse(state)

	require.Equal(t, domain.CurseResolutionSynergy, res.Outcome)
	assert.Equal(t, 50+2*10, res.Award)
	assert.Equal(t, 370, state.Credits)
	assert.Equal(t, 3, state.CurseCount)
	assert.False(t, state.Achievements[domain.AchievementCursed])
}

func TestResolveCurse_UnprotectedWipesToExactlyZero(t *testing.T) {
	state := &domain.GameState{Credits: 9999, CurseCount: 1}

	res := ResolveCurse(state)

	assert.Equal(t, domain.CurseResolutionWiped, res.Outcome)
	assert.Zero(t, state.Credits)
	assert.Equal(t, 2, state.CurseCount)
	assert.True(t, state.Achievements[domain.AchievementCursed])
}
