package domain

// Event types emitted by the engine. All outbound events are fire-and-forget:
// presentation and telemetry collaborators react to them, never the engine.
const (
	EventSpinCompleted  = "spin.completed"
	EventCurseTriggered = "curse.triggered"
	EventRoundCleared   = "round.cleared"
	EventGameOver       = "game.over"
	EventItemPurchased  = "item.purchased"
)

// SpinCompletedPayload is the event payload for spin.completed events
type SpinCompletedPayload struct {
	SessionID       string   `json:"session_id"`
	Round           int      `json:"round"`
	Day             int      `json:"day"`
	Payout          int      `json:"payout"`
	Credits         int      `json:"credits"`
	SpinsLeft       int      `json:"spins_left"`
	MatchedPatterns []string `json:"matched_patterns,omitempty"`
	BonusRespin     bool     `json:"bonus_respin"`
}

// CurseTriggeredPayload is the event payload for curse.triggered events
type CurseTriggeredPayload struct {
	SessionID  string `json:"session_id"`
	Resolution string `json:"resolution"`
	CurseCount int    `json:"curse_count"`
	SkullCells int    `json:"skull_cells"`
}

// RoundClearedPayload is the event payload for round.cleared events
type RoundClearedPayload struct {
	SessionID     string `json:"session_id"`
	Round         int    `json:"round"`
	RewardTickets int    `json:"reward_tickets"`
}

// GameOverPayload is reported outward for leaderboard/currency computation;
// the engine never awaits the collaborator's response.
type GameOverPayload struct {
	SessionID      string   `json:"session_id"`
	FinalCredits   int      `json:"final_credits"`
	RoundReached   int      `json:"round_reached"`
	CurseCount     int      `json:"curse_count"`
	OwnedTalismans []string `json:"owned_talismans"`
	Bonuses        []string `json:"bonuses"`
}

// ItemPurchasedPayload is the event payload for item.purchased events
type ItemPurchasedPayload struct {
	SessionID string `json:"session_id"`
	ItemID    string `json:"item_id"`
	Kind      string `json:"kind"` // "coin", "ticket", "talisman"
	Price     int    `json:"price"`
}
