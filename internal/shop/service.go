// Package shop generates rarity-weighted talisman offers and validates
// purchases against the ticket economy and slot capacity.
package shop

import (
	"fmt"
	"math"

	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
	"github.com/farrow-dev/SkullPit_Go/internal/ledger"
	"github.com/farrow-dev/SkullPit_Go/internal/utils"
)

// Service generates shop offers and processes talisman acquisition.
type Service struct {
	rng func() float64 // Injectable for testing
}

// NewService creates a shop service backed by the default RNG.
func NewService() *Service {
	return &Service{rng: utils.RandomFloat}
}

// NewServiceWithRNG creates a shop service with an injected RNG, used in tests.
func NewServiceWithRNG(rng func() float64) *Service {
	return &Service{rng: rng}
}

// GenerateOffers fills the offer slots. Each slot rolls a rarity tier on a
// 0-100 scale (common <=50, uncommon <=80, rare <=95, legendary above), then
// picks uniformly among eligible talismans of that tier not yet selected this
// call and not already owned. An exhausted tier falls back to any remaining
// eligible talisman regardless of tier. The eligibility set is supplied
// externally (unlock gating); nil means everything is eligible.
func (s *Service) GenerateOffers(state *domain.GameState, eligible map[string]bool) []string {
	offers := make([]string, 0, catalog.ShopOfferSlots)
	taken := make(map[string]bool)

	for slot := 0; slot < catalog.ShopOfferSlots; slot++ {
		tier := s.rollRarity()

		candidates := collectCandidates(state, eligible, taken, &tier)
		if len(candidates) == 0 {
			candidates = collectCandidates(state, eligible, taken, nil)
		}
		if len(candidates) == 0 {
			break
		}

		pick := candidates[int(s.rng()*float64(len(candidates)))%len(candidates)]
		offers = append(offers, pick)
		taken[pick] = true
	}

	return offers
}

// Reroll regenerates the offer list for an escalating credit price.
func (s *Service) Reroll(state *domain.GameState, eligible map[string]bool) error {
	price := RerollPrice(state.RerollCount)
	if state.Credits < price {
		return fmt.Errorf("%w: reroll costs %d credits", domain.ErrInsufficientFunds, price)
	}

	state.Credits -= price
	state.RerollCount++
	state.ShopOffers = s.GenerateOffers(state, eligible)
	return nil
}

// RerollPrice escalates with each reroll taken this round.
func RerollPrice(rerollCount int) int {
	return catalog.ShopRerollPrice + 5*rerollCount
}

// PurchaseTalisman validates and applies a talisman purchase from the offer
// list. Immediate talismans (lost_wallet) consume on the spot: the refund is
// credited and the offer removed, but nothing is added to the owned list.
func (s *Service) PurchaseTalisman(state *domain.GameState, id string) error {
	talisman, ok := catalog.TalismanByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTalismanNotFound, id)
	}
	if !offered(state, id) {
		return fmt.Errorf("%w: %s is not on offer", domain.ErrInvalidAction, id)
	}
	if state.HasTalisman(id) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAction, domain.ErrMsgAlreadyOwned)
	}

	price := DiscountedPrice(talisman.Price, state.Modifiers.ShopDiscount)
	if state.Tickets < price {
		return fmt.Errorf("%w: %s costs %d tickets", domain.ErrInsufficientTickets, id, price)
	}

	if !talisman.Immediate && len(state.OwnedTalismans) >= state.TalismanSlots {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAction, domain.ErrMsgSlotsFull)
	}

	state.Tickets -= price
	removeOffer(state, id)

	if !talisman.Immediate {
		state.OwnedTalismans = append(state.OwnedTalismans, id)
	}
	for _, effect := range talisman.Effects {
		ledger.ApplyEffect(state, effect)
	}
	return nil
}

// DiscountedPrice applies the shop discount, floored. Zero discount means
// no discount is active.
func DiscountedPrice(price int, discount float64) int {
	if discount <= 0 || discount >= 1 {
		return price
	}
	return int(math.Floor(float64(price) * discount))
}

func (s *Service) rollRarity() domain.Rarity {
	roll := s.rng() * 100
	switch {
	case roll <= catalog.RarityCommonThreshold:
		return domain.RarityCommon
	case roll <= catalog.RarityUncommonThreshold:
		return domain.RarityUncommon
	case roll <= catalog.RarityRareThreshold:
		return domain.RarityRare
	default:
		return domain.RarityLegendary
	}
}

// collectCandidates lists purchasable talisman ids. A nil tier matches any
// rarity (the fallback pass).
func collectCandidates(state *domain.GameState, eligible map[string]bool, taken map[string]bool, tier *domain.Rarity) []string {
	var out []string
	for _, t := range catalog.Talismans {
		if tier != nil && t.Rarity != *tier {
			continue
		}
		if taken[t.ID] || state.HasTalisman(t.ID) {
			continue
		}
		if eligible != nil && !eligible[t.ID] {
			continue
		}
		out = append(out, t.ID)
	}
	return out
}

func offered(state *domain.GameState, id string) bool {
	for _, offer := range state.ShopOffers {
		if offer == id {
			return true
		}
	}
	return false
}

func removeOffer(state *domain.GameState, id string) {
	for i, offer := range state.ShopOffers {
		if offer == id {
			state.ShopOffers = append(state.ShopOffers[:i], state.ShopOffers[i+1:]...)
			return
		}
	}
}
