package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Game Sessions
CREATE TABLE IF NOT EXISTS game_sessions (
    session_id UUID PRIMARY KEY,
    state JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Leaderboard of finished runs
CREATE TABLE IF NOT EXISTS leaderboard (
    id SERIAL PRIMARY KEY,
    session_id UUID NOT NULL,
    final_credits INTEGER NOT NULL DEFAULT 0,
    round_reached INTEGER NOT NULL DEFAULT 1,
    curse_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_leaderboard_ranking
    ON leaderboard (final_credits DESC, round_reached DESC);
`
