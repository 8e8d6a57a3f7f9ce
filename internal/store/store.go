// Package store persists session snapshots and finished-run leaderboard
// entries. The engine treats persistence as a fire-and-forget collaborator:
// a failing store is logged and played through, never surfaced to gameplay.
package store

import (
	"context"
	"time"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// LeaderboardEntry is one finished run reported for ranking.
type LeaderboardEntry struct {
	SessionID    string    `json:"session_id"`
	FinalCredits int       `json:"final_credits"`
	RoundReached int       `json:"round_reached"`
	CurseCount   int       `json:"curse_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store persists game sessions and leaderboard results.
type Store interface {
	SaveState(ctx context.Context, state *domain.GameState) error
	LoadState(ctx context.Context, sessionID string) (*domain.GameState, error)
	DeleteState(ctx context.Context, sessionID string) error

	RecordResult(ctx context.Context, entry LeaderboardEntry) error
	TopResults(ctx context.Context, limit int) ([]LeaderboardEntry, error)

	Ping(ctx context.Context) error
	Close()
}
