package catalog

import "github.com/farrow-dev/SkullPit_Go/internal/domain"

// Phone bonus ids. The buff_<symbol>_up and risk ids are consulted directly
// by the symbol weight resolver and pattern matcher.
const (
	BonusBuffCherryUp   = "buff_cherry_up"
	BonusBuffLemonUp    = "buff_lemon_up"
	BonusBuffCloverUp   = "buff_clover_up"
	BonusBuffBellUp     = "buff_bell_up"
	BonusBuffSevenUp    = "buff_seven_up"
	BonusRiskCursedLuck = "risk_cursed_luck"
	BonusRiskGlassCannon = "risk_glass_cannon"
	BonusCoins          = "bonus_coins"
	BonusTickets        = "bonus_tickets"
	BonusExtraSpins     = "bonus_extra_spins"
	BonusShopDiscount   = "bonus_shop_discount"
)

// ExtraSpinsPerDay is granted each day while bonus_extra_spins is active.
const ExtraSpinsPerDay = 2

// PhoneBonuses is the pool the random 3-offer set is drawn from at round
// transitions. Permanent bonuses are stored as active bonus ids; immediate
// bonuses apply once on selection.
var PhoneBonuses = []domain.PhoneBonus{
	{ID: BonusBuffCherryUp, Name: "Cherry Season", Permanent: true,
		Effects: []domain.Effect{{Kind: domain.EffectProbabilityDelta, Symbol: domain.SymbolCherry, Value: BuffCommonDelta}}},
	{ID: BonusBuffLemonUp, Name: "Lemon Season", Permanent: true,
		Effects: []domain.Effect{{Kind: domain.EffectProbabilityDelta, Symbol: domain.SymbolLemon, Value: BuffCommonDelta}}},
	{ID: BonusBuffCloverUp, Name: "Clover Season", Permanent: true,
		Effects: []domain.Effect{{Kind: domain.EffectProbabilityDelta, Symbol: domain.SymbolClover, Value: BuffCommonDelta}}},
	{ID: BonusBuffBellUp, Name: "Bell Season", Permanent: true,
		Effects: []domain.Effect{{Kind: domain.EffectProbabilityDelta, Symbol: domain.SymbolBell, Value: BuffCommonDelta}}},
	{ID: BonusBuffSevenUp, Name: "Seven Season", Permanent: true,
		Effects: []domain.Effect{{Kind: domain.EffectProbabilityDelta, Symbol: domain.SymbolSeven, Value: BuffSevenDelta}}},
	{ID: BonusRiskCursedLuck, Name: "Cursed Luck", Permanent: true,
		Effects: []domain.Effect{
			{Kind: domain.EffectProbabilityDelta, Symbol: domain.SymbolSkull, Value: CursedLuckDelta},
			{Kind: domain.EffectProbabilityDelta, Symbol: domain.SymbolSeven, Value: CursedLuckDelta},
		}},
	{ID: BonusRiskGlassCannon, Name: "Glass Cannon", Permanent: true,
		Effects: []domain.Effect{{Kind: domain.EffectPayoutMultiplier, Value: GlassCannonMultiplier}}},
	{ID: BonusCoins, Name: "Windfall", Permanent: false,
		Effects: []domain.Effect{{Kind: domain.EffectAddCredits, Amount: 200}}},
	{ID: BonusTickets, Name: "Ticket Stub", Permanent: false,
		Effects: []domain.Effect{{Kind: domain.EffectAddTickets, Amount: 3}}},
	{ID: BonusExtraSpins, Name: "Overtime", Permanent: true,
		Effects: []domain.Effect{{Kind: domain.EffectAddSpins, Amount: ExtraSpinsPerDay}}},
	{ID: BonusShopDiscount, Name: "Haggler", Permanent: true,
		Effects: []domain.Effect{{Kind: domain.EffectShopDiscount, Value: 0.8}}},
}

// PhoneBonusByID returns the phone bonus definition, or false if unknown.
func PhoneBonusByID(id string) (domain.PhoneBonus, bool) {
	for _, b := range PhoneBonuses {
		if b.ID == id {
			return b, true
		}
	}
	return domain.PhoneBonus{}, false
}

// PhoneOfferCount is the size of the random bonus-choice set.
const PhoneOfferCount = 3
