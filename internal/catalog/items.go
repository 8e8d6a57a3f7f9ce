package catalog

import "github.com/farrow-dev/SkullPit_Go/internal/domain"

// Coin item ids
const (
	CoinItemLuckyCharm = "lucky_charm"
	CoinItemDoubleStar = "double_star"
	CoinItemHotStreak  = "hot_streak"
	CoinItemHolyShield = "holy_shield"
	CoinItemWildCard   = "wild_card"
)

// LuckyCharmSpins is the active-effect duration armed by using a lucky charm.
const LuckyCharmSpins = 3

// HotStreakSpins is added directly to spins-left, not flagged.
const HotStreakSpins = 5

// CoinItems are one-shot boosts bought with credits. Using one consumes one
// unit from the counted inventory and applies its effect.
var CoinItems = []domain.CoinItem{
	{ID: CoinItemLuckyCharm, Name: "Lucky Charm", Price: 40,
		Effect: domain.Effect{Kind: domain.EffectProbabilityOverride, Symbol: domain.SymbolClover, Value: LuckyCharmCloverProbability, Amount: LuckyCharmSpins}},
	{ID: CoinItemDoubleStar, Name: "Double Star", Price: 60,
		Effect: domain.Effect{Kind: domain.EffectDoubleNextWin}},
	{ID: CoinItemHotStreak, Name: "Hot Streak", Price: 80,
		Effect: domain.Effect{Kind: domain.EffectAddSpins, Amount: HotStreakSpins}},
	{ID: CoinItemHolyShield, Name: "Holy Shield", Price: 50,
		Effect: domain.Effect{Kind: domain.EffectCurseAbsorbOnce}},
	{ID: CoinItemWildCard, Name: "Wild Card", Price: 70,
		Effect: domain.Effect{Kind: domain.EffectWildInjection, Amount: 1}},
}

// Ticket item ids
const (
	TicketItemCopperEngine = "copper_engine"
	TicketItemLoyaltyCard  = "loyalty_card"
	TicketItemCloverOil    = "clover_oil"
	TicketItemWildInk      = "wild_ink"
	TicketItemCoinShower   = "coin_shower"
	TicketItemHolyWater    = "holy_water"
	TicketItemTimeCrystal  = "time_crystal"
	TicketItemWildEssence  = "wild_essence"
)

// TicketItems are ticket-purchased modifiers in three behavioral classes:
// passive (permanent flag), active (N-spin countdown), consumable (one-shot).
var TicketItems = []domain.TicketItem{
	{ID: TicketItemCopperEngine, Name: "Copper Engine", Class: domain.ItemClassPassive, Price: 4,
		Effect: domain.Effect{Kind: domain.EffectSpinCoinBonus, Amount: 2}},
	{ID: TicketItemLoyaltyCard, Name: "Loyalty Card", Class: domain.ItemClassPassive, Price: 5,
		Effect: domain.Effect{Kind: domain.EffectShopDiscount, Value: 0.9}},
	{ID: TicketItemCloverOil, Name: "Clover Oil", Class: domain.ItemClassActive, Price: 3, Duration: 5,
		Effect: domain.Effect{Kind: domain.EffectProbabilityOverride, Symbol: domain.SymbolClover, Value: LuckyCharmCloverProbability}},
	{ID: TicketItemWildInk, Name: "Wild Ink", Class: domain.ItemClassActive, Price: 4, Duration: 3,
		Effect: domain.Effect{Kind: domain.EffectWildInjection}},
	{ID: TicketItemCoinShower, Name: "Coin Shower", Class: domain.ItemClassConsumable, Price: 6,
		Effect: domain.Effect{Kind: domain.EffectAddCredits, Amount: 500}},
	{ID: TicketItemHolyWater, Name: "Holy Water", Class: domain.ItemClassConsumable, Price: 4,
		Effect: domain.Effect{Kind: domain.EffectCurseAbsorbOnce}},
	{ID: TicketItemTimeCrystal, Name: "Time Crystal", Class: domain.ItemClassConsumable, Price: 5,
		Effect: domain.Effect{Kind: domain.EffectRerollLastSpin}},
	{ID: TicketItemWildEssence, Name: "Wild Essence", Class: domain.ItemClassConsumable, Price: 3,
		Effect: domain.Effect{Kind: domain.EffectWildInjection, Amount: 1}},
}

// CoinItemByID returns the coin item definition, or false if unknown.
func CoinItemByID(id string) (domain.CoinItem, bool) {
	for _, item := range CoinItems {
		if item.ID == id {
			return item, true
		}
	}
	return domain.CoinItem{}, false
}

// TicketItemByID returns the ticket item definition, or false if unknown.
func TicketItemByID(id string) (domain.TicketItem, bool) {
	for _, item := range TicketItems {
		if item.ID == id {
			return item, true
		}
	}
	return domain.TicketItem{}, false
}
