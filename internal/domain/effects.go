package domain

// EffectKind is the closed set of modifier effect variants. Applying an item,
// talisman, or phone bonus runs each of its effects through a single
// interpreter instead of per-id switch logic.
type EffectKind string

const (
	// Immediate effects
	EffectAddCredits EffectKind = "add_credits"
	EffectAddTickets EffectKind = "add_tickets"
	EffectAddSpins   EffectKind = "add_spins"

	// Probability effects, consulted by the symbol weight resolver
	EffectProbabilityDelta    EffectKind = "probability_delta"
	EffectProbabilityOverride EffectKind = "probability_override"

	// Accumulating talisman effects
	EffectSymbolValueBoost EffectKind = "symbol_value_boost"
	EffectCurseBonus       EffectKind = "curse_bonus"
	EffectSpinCoinBonus    EffectKind = "spin_coin_bonus"
	EffectDailyCredits     EffectKind = "daily_credits"
	EffectDailyTickets     EffectKind = "daily_tickets"

	// Flag effects (set, not accumulated)
	EffectCurseProtection EffectKind = "curse_protection" // permanent negation
	EffectCurseAbsorbOnce EffectKind = "curse_absorb_once"
	EffectRespinChance    EffectKind = "respin_chance"
	EffectShopDiscount    EffectKind = "shop_discount"
	EffectPayoutMultiplier EffectKind = "payout_multiplier"

	// One-spin flags
	EffectDoubleNextWin  EffectKind = "double_next_win"
	EffectWildInjection  EffectKind = "wild_injection"
	EffectRerollLastSpin EffectKind = "reroll_last_spin"
)

// Effect is one tagged modifier variant. Which fields are meaningful depends
// on Kind: Symbol for symbol-targeted kinds, Amount for integer effects,
// Value for probabilities/multipliers.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Symbol SymbolID   `json:"symbol,omitempty"`
	Amount int        `json:"amount,omitempty"`
	Value  float64    `json:"value,omitempty"`
}

// Modifiers is the accumulated effect of everything permanently owned:
// talismans, passive ticket items, and permanent phone bonuses. Merged on
// purchase, carried in the snapshot so restore is lossless.
type Modifiers struct {
	SymbolValueBoost map[SymbolID]int `json:"symbol_value_boost,omitempty"`
	CurseProtection  bool             `json:"curse_protection,omitempty"`
	CurseBonus       int              `json:"curse_bonus,omitempty"`
	SpinCoinBonus    int              `json:"spin_coin_bonus,omitempty"`
	DailyCredits     int              `json:"daily_credits,omitempty"`
	DailyTickets     int              `json:"daily_tickets,omitempty"`
	RespinChance     float64          `json:"respin_chance,omitempty"`
	ShopDiscount     float64          `json:"shop_discount,omitempty"`
	PayoutMultiplier float64          `json:"payout_multiplier,omitempty"`
}

// ItemClass is the behavioral class of a ticket item.
type ItemClass string

const (
	ItemClassPassive    ItemClass = "passive"    // permanent once owned
	ItemClassActive     ItemClass = "active"     // applies for N subsequent spins
	ItemClassConsumable ItemClass = "consumable" // single immediate effect
)

// Rarity tags a talisman tier for shop offer generation.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// CoinItem is a one-shot boost bought with credits.
type CoinItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Effect Effect `json:"effect"`
}

// TicketItem is a ticket-purchased modifier: passive, active, or consumable.
type TicketItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Class    ItemClass `json:"class"`
	Price    int       `json:"price"`
	Duration int       `json:"duration,omitempty"` // spins, active class only
	Effect   Effect    `json:"effect"`
}

// Talisman is a permanently owned, rarity-tagged modifier bounded by slot
// capacity. Immediate talismans (lost_wallet) consume on purchase instead of
// persisting.
type Talisman struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Rarity    Rarity   `json:"rarity"`
	Price     int      `json:"price"`
	Effects   []Effect `json:"effects"`
	Immediate bool     `json:"immediate,omitempty"`
}

// PhoneBonus is a round-transition buff chosen from a random 3-offer set.
type PhoneBonus struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Permanent bool     `json:"permanent"` // stored in PermanentBonuses when true
	Effects   []Effect `json:"effects"`
}
