package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

type postgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgreSQL-backed store on an existing pool.
func NewPostgresStore(db *pgxpool.Pool) Store {
	return &postgresStore{db: db}
}

// SaveState upserts the session snapshot as JSONB keyed by session id.
func (s *postgresStore) SaveState(ctx context.Context, state *domain.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalState, err)
	}

	query := `
		INSERT INTO game_sessions (session_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (session_id)
		DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()
	`

	_, err = s.db.Exec(ctx, query, state.SessionID, data)
	return err
}

// LoadState fetches and decodes the session snapshot.
func (s *postgresStore) LoadState(ctx context.Context, sessionID string) (*domain.GameState, error) {
	query := `SELECT state FROM game_sessions WHERE session_id = $1`

	var data []byte
	err := s.db.QueryRow(ctx, query, sessionID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, err
	}

	var state domain.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalState, err)
	}
	return &state, nil
}

// DeleteState removes the session row. Missing rows are not an error.
func (s *postgresStore) DeleteState(ctx context.Context, sessionID string) error {
	query := `DELETE FROM game_sessions WHERE session_id = $1`

	_, err := s.db.Exec(ctx, query, sessionID)
	return err
}

// RecordResult inserts one finished run into the leaderboard.
func (s *postgresStore) RecordResult(ctx context.Context, entry LeaderboardEntry) error {
	query := `
		INSERT INTO leaderboard (session_id, final_credits, round_reached, curse_count)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.Exec(ctx, query, entry.SessionID, entry.FinalCredits, entry.RoundReached, entry.CurseCount)
	return err
}

// TopResults returns the best runs ordered by credits, then round reached.
func (s *postgresStore) TopResults(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	query := `
		SELECT session_id, final_credits, round_reached, curse_count, created_at
		FROM leaderboard
		ORDER BY final_credits DESC, round_reached DESC
		LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.SessionID, &e.FinalCredits, &e.RoundReached, &e.CurseCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Ping checks database connectivity.
func (s *postgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the connection pool.
func (s *postgresStore) Close() {
	s.db.Close()
}
