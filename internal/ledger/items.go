package ledger

import (
	"fmt"

	"github.com/farrow-dev/SkullPit_Go/internal/catalog"
	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// BuyCoinItem purchases one unit of a coin item with credits.
func BuyCoinItem(state *domain.GameState, id string) error {
	item, ok := catalog.CoinItemByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	if state.Credits < item.Price {
		return fmt.Errorf("%w: %s costs %d credits", domain.ErrInsufficientFunds, id, item.Price)
	}

	state.Credits -= item.Price
	if state.CoinItems == nil {
		state.CoinItems = make(map[string]int)
	}
	state.CoinItems[id]++
	return nil
}

// UseCoinItem consumes one unit of a coin item and applies its effect.
// Probability-override items arm an active-effect countdown instead of
// mutating state directly.
func UseCoinItem(state *domain.GameState, id string) error {
	item, ok := catalog.CoinItemByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	if state.CoinItems[id] <= 0 {
		return fmt.Errorf("%w: no %s to use", domain.ErrInvalidAction, id)
	}

	state.CoinItems[id]--
	armEffect(state, id, item.Effect)
	return nil
}

// BuyTicketItem purchases a ticket item. Passive items apply immediately and
// permanently; active and consumable items go into the counted inventory.
func BuyTicketItem(state *domain.GameState, id string) error {
	item, ok := catalog.TicketItemByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	if item.Class == domain.ItemClassPassive && state.PassiveItems[id] {
		return fmt.Errorf("%w: %s already owned", domain.ErrInvalidAction, id)
	}
	if state.Tickets < item.Price {
		return fmt.Errorf("%w: %s costs %d tickets", domain.ErrInsufficientTickets, id, item.Price)
	}

	state.Tickets -= item.Price

	if item.Class == domain.ItemClassPassive {
		if state.PassiveItems == nil {
			state.PassiveItems = make(map[string]bool)
		}
		state.PassiveItems[id] = true
		ApplyEffect(state, item.Effect)
		return nil
	}

	if state.TicketInventory == nil {
		state.TicketInventory = make(map[string]int)
	}
	state.TicketInventory[id]++
	return nil
}

// UseTicketItem activates an owned active item (arming its spin countdown)
// or consumes a consumable. Passive items have no use action.
func UseTicketItem(state *domain.GameState, id string) error {
	item, ok := catalog.TicketItemByID(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	if item.Class == domain.ItemClassPassive {
		return fmt.Errorf("%w: %s is passive", domain.ErrInvalidAction, id)
	}
	if state.TicketInventory[id] <= 0 {
		return fmt.Errorf("%w: no %s to use", domain.ErrInvalidAction, id)
	}

	state.TicketInventory[id]--

	if item.Class == domain.ItemClassActive {
		if state.ActiveEffects == nil {
			state.ActiveEffects = make(map[string]int)
		}
		state.ActiveEffects[id] = item.Duration
		return nil
	}

	ApplyEffect(state, item.Effect)
	return nil
}

// armEffect routes a used coin item either into the active-effect countdown
// (duration-carrying probability overrides) or straight through the
// interpreter.
func armEffect(state *domain.GameState, id string, effect domain.Effect) {
	if effect.Kind == domain.EffectProbabilityOverride && effect.Amount > 0 {
		if state.ActiveEffects == nil {
			state.ActiveEffects = make(map[string]int)
		}
		state.ActiveEffects[id] = effect.Amount
		return
	}
	ApplyEffect(state, effect)
}
