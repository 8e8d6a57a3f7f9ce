package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidSessionID  = "Invalid session id"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Game operation error messages
	ErrMsgNewGameFailed        = "Failed to start a new game"
	ErrMsgGetStateFailed       = "Failed to retrieve game state"
	ErrMsgSpinFailed           = "Failed to spin"
	ErrMsgBuyItemFailed        = "Failed to buy item"
	ErrMsgUseItemFailed        = "Failed to use item"
	ErrMsgPurchaseFailed       = "Failed to purchase talisman"
	ErrMsgRerollFailed         = "Failed to reroll shop"
	ErrMsgPaymentFailed        = "Failed to make payment"
	ErrMsgDifficultyFailed     = "Failed to select difficulty"
	ErrMsgEndDayFailed         = "Failed to end day"
	ErrMsgPhoneSelectFailed    = "Failed to select phone bonus"
	ErrMsgRestartFailed        = "Failed to restart game"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
)

// Success messages returned by game handlers.
const (
	MsgRestartSuccess = "Game restarted"
)
