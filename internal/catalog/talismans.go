package catalog

import "github.com/farrow-dev/SkullPit_Go/internal/domain"

// Talisman ids
const (
	TalismanRosary        = "rosary"
	TalismanDevilHorn     = "devil_horn"
	TalismanCrystalSkull  = "crystal_skull"
	TalismanGrandmaWallet = "grandma_wallet"
	TalismanFakeCoin      = "fake_coin"
	TalismanFortuneCookie = "fortune_cookie"
	TalismanDynamo        = "dynamo"
	TalismanLostWallet    = "lost_wallet"
	TalismanHorseshoe     = "lucky_horseshoe"
	TalismanGoldenCherry  = "golden_cherry"
	TalismanGoldenClover  = "golden_clover"
	TalismanGoldenBell    = "golden_bell"
	TalismanSevenSeal     = "seven_seal"
)

// DynamoRespinChance is set, not accumulated: ownership is unique, so owning
// dynamo twice is impossible.
const DynamoRespinChance = 0.5

// LostWalletRefund is credited immediately on purchase; lost_wallet never
// persists into the owned list.
const LostWalletRefund = 50

// Day-end talisman bonuses applied when a non-final day closes.
const (
	GrandmaWalletDailyCredits = 30
	FakeCoinDailyCredits      = 10
	FortuneCookieDailyTickets = 1
)

// Talismans is the full acquisition pool. Effects accumulate additively on
// purchase except respin chance, which is a flag-set.
var Talismans = []domain.Talisman{
	{ID: TalismanRosary, Name: "Rosary", Rarity: domain.RarityRare, Price: 8,
		Effects: []domain.Effect{{Kind: domain.EffectCurseProtection}}},
	{ID: TalismanDevilHorn, Name: "Devil Horn", Rarity: domain.RarityRare, Price: 8,
		Effects: []domain.Effect{{Kind: domain.EffectCurseBonus, Amount: 20}}},
	{ID: TalismanCrystalSkull, Name: "Crystal Skull", Rarity: domain.RarityLegendary, Price: 12,
		Effects: []domain.Effect{{Kind: domain.EffectCurseBonus, Amount: 50}}},
	{ID: TalismanGrandmaWallet, Name: "Grandma's Wallet", Rarity: domain.RarityCommon, Price: 3,
		Effects: []domain.Effect{{Kind: domain.EffectDailyCredits, Amount: GrandmaWalletDailyCredits}}},
	{ID: TalismanFakeCoin, Name: "Fake Coin", Rarity: domain.RarityCommon, Price: 3,
		Effects: []domain.Effect{{Kind: domain.EffectDailyCredits, Amount: FakeCoinDailyCredits}}},
	{ID: TalismanFortuneCookie, Name: "Fortune Cookie", Rarity: domain.RarityUncommon, Price: 5,
		Effects: []domain.Effect{{Kind: domain.EffectDailyTickets, Amount: FortuneCookieDailyTickets}}},
	{ID: TalismanDynamo, Name: "Dynamo", Rarity: domain.RarityLegendary, Price: 12,
		Effects: []domain.Effect{{Kind: domain.EffectRespinChance, Value: DynamoRespinChance}}},
	{ID: TalismanLostWallet, Name: "Lost Wallet", Rarity: domain.RarityCommon, Price: 3, Immediate: true,
		Effects: []domain.Effect{{Kind: domain.EffectAddCredits, Amount: LostWalletRefund}}},
	{ID: TalismanHorseshoe, Name: "Lucky Horseshoe", Rarity: domain.RarityUncommon, Price: 5,
		Effects: []domain.Effect{{Kind: domain.EffectSpinCoinBonus, Amount: 3}}},
	{ID: TalismanGoldenCherry, Name: "Golden Cherry", Rarity: domain.RarityCommon, Price: 3,
		Effects: []domain.Effect{{Kind: domain.EffectSymbolValueBoost, Symbol: domain.SymbolCherry, Amount: 1}}},
	{ID: TalismanGoldenClover, Name: "Golden Clover", Rarity: domain.RarityUncommon, Price: 5,
		Effects: []domain.Effect{{Kind: domain.EffectSymbolValueBoost, Symbol: domain.SymbolClover, Amount: 2}}},
	{ID: TalismanGoldenBell, Name: "Golden Bell", Rarity: domain.RarityUncommon, Price: 5,
		Effects: []domain.Effect{{Kind: domain.EffectSymbolValueBoost, Symbol: domain.SymbolBell, Amount: 2}}},
	{ID: TalismanSevenSeal, Name: "Seal of Seven", Rarity: domain.RarityRare, Price: 8,
		Effects: []domain.Effect{{Kind: domain.EffectSymbolValueBoost, Symbol: domain.SymbolSeven, Amount: 5}}},
}

// TalismanByID returns the talisman definition, or false if unknown.
func TalismanByID(id string) (domain.Talisman, bool) {
	for _, t := range Talismans {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Talisman{}, false
}

// Shop offer generation
const (
	ShopOfferSlots  = 3
	ShopRerollPrice = 25 // credits
)

// Rarity tier thresholds on a 0-100 roll: common <=50, uncommon <=80,
// rare <=95, legendary above.
const (
	RarityCommonThreshold   = 50
	RarityUncommonThreshold = 80
	RarityRareThreshold     = 95
)
