package metrics

import (
	"context"

	"github.com/osse101/RPSLS_Go/internal/event"
	"github.com/osse101/RPSLS_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.RoundPlayed,
		event.HistoryCleared,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if evt.Type != event.RoundPlayed {
		return nil
	}

	payload, err := event.RoundFromEvent(evt)
	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		return nil
	}

	mode := string(payload.Mode)
	AIMode.WithLabelValues(mode).Inc()
	AIOutcome.WithLabelValues(mode, string(payload.Winner)).Inc()

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type, "mode", mode, "winner", payload.Winner)
	return nil
}
