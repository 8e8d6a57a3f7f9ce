package event

import (
	"context"
	"errors"
	"testing"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: Type("unwatched")})
	if err != nil {
		t.Errorf("Publish with no subscribers returned error: %v", err)
	}
}

func TestNewGameOverEvent(t *testing.T) {
	state := &domain.GameState{
		SessionID:        "s-1",
		Credits:          420,
		Round:            3,
		CurseCount:       2,
		OwnedTalismans:   []string{"rosary"},
		PermanentBonuses: []string{"buff_cherry_up"},
	}

	evt := NewGameOverEvent(state)

	if evt.Type != GameOver {
		t.Errorf("Expected type %s, got %s", GameOver, evt.Type)
	}
	payload, ok := evt.Payload.(domain.GameOverPayload)
	if !ok {
		t.Fatalf("Expected GameOverPayload, got %T", evt.Payload)
	}
	if payload.FinalCredits != 420 || payload.RoundReached != 3 {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestNewSpinCompletedEvent(t *testing.T) {
	state := &domain.GameState{SessionID: "s-1", Round: 1, CurrentDay: 2, Credits: 150, SpinsLeft: 9}
	outcome := &domain.SpinOutcome{Payout: 50, MatchedPatterns: []string{"top_row"}}

	evt := NewSpinCompletedEvent(state, outcome)

	payload, ok := evt.Payload.(domain.SpinCompletedPayload)
	if !ok {
		t.Fatalf("Expected SpinCompletedPayload, got %T", evt.Payload)
	}
	if payload.Payout != 50 || payload.Day != 2 || payload.SpinsLeft != 9 {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestCalculateRetryDelay(t *testing.T) {
	base := CalculateRetryDelay(2, 1)
	if base != 2 {
		t.Errorf("Expected base delay 2, got %d", base)
	}
	if CalculateRetryDelay(2, 3) != 8 {
		t.Errorf("Expected 8 for attempt 3, got %d", CalculateRetryDelay(2, 3))
	}
}
