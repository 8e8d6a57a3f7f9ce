package game

import (
	"encoding/json"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
	"github.com/farrow-dev/SkullPit_Go/internal/reel"
)

// Snapshot is the read-only state view handed to presentation. Derived
// conditions are recomputed here, never cached in the state itself.
type Snapshot struct {
	State                domain.GameState            `json:"state"`
	GoalCleared          bool                        `json:"goal_cleared"`
	RemainingDebt        int                         `json:"remaining_debt"`
	DisplayProbabilities map[domain.SymbolID]float64 `json:"display_probabilities"`
}

// newSnapshot deep-copies the state so presentation can never observe a
// mutation happening under the session lock.
func newSnapshot(state *domain.GameState) (*Snapshot, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}

	var copied domain.GameState
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}

	return &Snapshot{
		State:                copied,
		GoalCleared:          state.GoalCleared(),
		RemainingDebt:        state.RemainingDebt(),
		DisplayProbabilities: reel.DisplayProbabilities(state.PermanentBonuses, state.ActiveEffects),
	}, nil
}
