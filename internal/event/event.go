package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Engine event types
const (
	SpinCompleted  = Type(domain.EventSpinCompleted)
	CurseTriggered = Type(domain.EventCurseTriggered)
	RoundCleared   = Type(domain.EventRoundCleared)
	GameOver       = Type(domain.EventGameOver)
	ItemPurchased  = Type(domain.EventItemPurchased)
)

// Type-safe event constructors

// NewSpinCompletedEvent creates a spin completion event from the resolved outcome.
func NewSpinCompletedEvent(state *domain.GameState, outcome *domain.SpinOutcome) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinCompleted,
		Payload: domain.SpinCompletedPayload{
			SessionID:       state.SessionID,
			Round:           state.Round,
			Day:             state.CurrentDay,
			Payout:          outcome.Payout,
			Credits:         state.Credits,
			SpinsLeft:       state.SpinsLeft,
			MatchedPatterns: outcome.MatchedPatterns,
			BonusRespin:     outcome.BonusRespin,
		},
	}
}

// NewCurseTriggeredEvent creates a curse event carrying the arbitration outcome.
func NewCurseTriggeredEvent(state *domain.GameState, resolution string, skullCells int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CurseTriggered,
		Payload: domain.CurseTriggeredPayload{
			SessionID:  state.SessionID,
			Resolution: resolution,
			CurseCount: state.CurseCount,
			SkullCells: skullCells,
		},
	}
}

// NewRoundClearedEvent creates a round clear event.
func NewRoundClearedEvent(state *domain.GameState, rewardTickets int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundCleared,
		Payload: domain.RoundClearedPayload{
			SessionID:     state.SessionID,
			Round:         state.Round,
			RewardTickets: rewardTickets,
		},
	}
}

// NewGameOverEvent reports the final run outward for leaderboard computation.
func NewGameOverEvent(state *domain.GameState) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameOver,
		Payload: domain.GameOverPayload{
			SessionID:      state.SessionID,
			FinalCredits:   state.Credits,
			RoundReached:   state.Round,
			CurseCount:     state.CurseCount,
			OwnedTalismans: state.OwnedTalismans,
			Bonuses:        state.PermanentBonuses,
		},
	}
}

// NewItemPurchasedEvent creates a purchase event for any of the three
// modifier kinds.
func NewItemPurchasedEvent(sessionID, itemID, kind string, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemPurchased,
		Payload: domain.ItemPurchasedPayload{
			SessionID: sessionID,
			ItemID:    itemID,
			Kind:      kind,
			Price:     price,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; the callers that need decoupling wrap the
	// bus in a ResilientPublisher.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
