package domain

// Phase is the explicit progression sub-state. Prompts awaiting player input
// are modeled as phases so redundant spin/endDay intents can be rejected
// instead of relying on incidental spinsLeft checks.
type Phase string

const (
	PhasePlaying          Phase = "playing"
	PhaseDifficultyChoice Phase = "difficulty_choice"
	PhasePhoneChoice      Phase = "phone_choice"
	PhaseGameOver         Phase = "game_over"
)

// Achievement keys unlocked by curse resolution.
const (
	AchievementCursed   = "cursed"
	AchievementSurvivor = "survivor"
)

// GameState is the full authoritative state of one session. The engine
// exclusively owns and mutates it; presentation holds read-only snapshots.
type GameState struct {
	SessionID string `json:"session_id"`

	// Currency and grid
	Credits int  `json:"credits"`
	Tickets int  `json:"tickets"`
	Grid    Grid `json:"grid"`

	// Round/day/debt progression
	Round              int   `json:"round"`
	CurrentDay         int   `json:"current_day"`
	MaxDays            int   `json:"max_days"`
	CurrentGoal        int   `json:"current_goal"`
	SpinsLeft          int   `json:"spins_left"`
	MaxSpins           int   `json:"max_spins"`
	CurrentDebt        int   `json:"current_debt"`
	PaidAmount         int   `json:"paid_amount"`
	DeadlineTurn       int   `json:"deadline_turn"`
	CurrentTurn        int   `json:"current_turn"`
	RoundRewardTickets int   `json:"round_reward_tickets"`
	Phase              Phase `json:"phase"`
	GameOver           bool  `json:"game_over"`

	// Curse tracking
	CurseCount   int             `json:"curse_count"`
	Achievements map[string]bool `json:"achievements"`

	// Modifier economy
	CoinItems       map[string]int  `json:"coin_items"`
	TicketInventory map[string]int  `json:"ticket_inventory"`
	PassiveItems    map[string]bool `json:"passive_items"`
	ActiveEffects   map[string]int  `json:"active_effects"` // item id -> remaining spins
	OwnedTalismans  []string        `json:"owned_talismans"`
	TalismanSlots   int             `json:"talisman_slots"`
	Modifiers       Modifiers       `json:"modifiers"`

	// Phone bonuses: permanent bonus ids consulted by the weight resolver
	// and pattern matcher, plus the pending 3-offer set when PhasePhoneChoice.
	PermanentBonuses []string `json:"permanent_bonuses"`
	PhoneOffers      []string `json:"phone_offers,omitempty"`

	// Shop
	ShopOffers  []string `json:"shop_offers"`
	RerollCount int      `json:"reroll_count"`

	// One-spin flags
	DoubleNextWin   bool `json:"double_next_win,omitempty"`
	WildNext        bool `json:"wild_next,omitempty"`
	CurseAbsorbOnce bool `json:"curse_absorb_once,omitempty"`
	RerollArmed     bool `json:"reroll_armed,omitempty"`
}

// HasTalisman reports whether the talisman is owned.
func (s *GameState) HasTalisman(id string) bool {
	for _, owned := range s.OwnedTalismans {
		if owned == id {
			return true
		}
	}
	return false
}

// HasBonus reports whether the permanent phone bonus is active.
func (s *GameState) HasBonus(id string) bool {
	for _, b := range s.PermanentBonuses {
		if b == id {
			return true
		}
	}
	return false
}

// RemainingDebt is the unpaid portion of the current round's debt.
func (s *GameState) RemainingDebt() int {
	remaining := s.CurrentDebt - s.PaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// DebtSatisfied reports whether the round's debt is fully paid.
func (s *GameState) DebtSatisfied() bool {
	return s.PaidAmount >= s.CurrentDebt
}

// GoalCleared is the derived round-clear condition. It is recomputed on
// demand rather than cached to avoid staleness.
func (s *GameState) GoalCleared() bool {
	return s.Credits >= s.CurrentGoal
}

// SpinOutcome is the resolved result of one spin.
type SpinOutcome struct {
	Grid            Grid     `json:"grid"`
	Payout          int      `json:"payout"`
	WinningCells    []int    `json:"winning_cells"`
	MatchedPatterns []string `json:"matched_patterns"`
	CurseTriggered  bool     `json:"curse_triggered"`
	CurseResolution string   `json:"curse_resolution,omitempty"`
	BonusRespin     bool     `json:"bonus_respin"`
	Message         string   `json:"message"`
}

// Curse resolution outcomes, in arbitration priority order.
const (
	CurseResolutionProtected = "protected" // permanent talisman negation
	CurseResolutionAbsorbed  = "absorbed"  // one-time flag cleared
	CurseResolutionShielded  = "shielded"  // coin-item shield decremented
	CurseResolutionSynergy   = "synergy"   // curse bonus paid instead of wipe
	CurseResolutionWiped     = "wiped"     // credits reset to 0
)
