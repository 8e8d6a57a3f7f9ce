package metrics

import (
	"context"

	"github.com/farrow-dev/SkullPit_Go/internal/domain"
	"github.com/farrow-dev/SkullPit_Go/internal/event"
)

// EventMetricsCollector subscribes to engine events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all engine event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinCompleted,
		event.CurseTriggered,
		event.RoundCleared,
		event.GameOver,
		event.ItemPurchased,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SpinCompleted:
		SpinsPerformed.Inc()
		if payload, ok := evt.Payload.(domain.SpinCompletedPayload); ok && payload.Payout > 0 {
			PayoutCredits.Add(float64(payload.Payout))
		}
	case event.CurseTriggered:
		if payload, ok := evt.Payload.(domain.CurseTriggeredPayload); ok {
			CursesResolved.WithLabelValues(payload.Resolution).Inc()
		}
	case event.RoundCleared:
		RoundsCleared.Inc()
	case event.GameOver:
		GamesCompleted.Inc()
	case event.ItemPurchased:
		if payload, ok := evt.Payload.(domain.ItemPurchasedPayload); ok {
			ItemsBought.WithLabelValues(payload.ItemID, payload.Kind).Inc()
			if payload.Kind == "talisman" {
				TalismansPurchased.WithLabelValues(payload.ItemID).Inc()
			}
		}
	}

	return nil
}
