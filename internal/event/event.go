package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RPSLS_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	RoundPlayed    Type = "round.played"
	HistoryCleared Type = "history.cleared"
)

// RoundPlayedPayloadV1 is the typed payload for round played events
type RoundPlayedPayloadV1 struct {
	GameID         uuid.UUID      `json:"game_id"`
	PlayerID       *int           `json:"player_id,omitempty"`
	PlayerChoice   domain.Gesture `json:"player_choice"`
	ComputerChoice domain.Gesture `json:"computer_choice"`
	Winner         domain.Winner  `json:"winner"`
	Mode           domain.Mode    `json:"mode"`
	PlayedAt       time.Time      `json:"played_at"`
}

// NewRoundPlayedEvent wraps a finished game. The winning-move text is not carried,
// subscribers derive it from the two gestures.
func NewRoundPlayedEvent(game *domain.Game, playerID *int, requestID string) Event {
	var metadata Metadata
	if requestID != "" {
		metadata = map[string]interface{}{"request_id": requestID}
	}
	return Event{
		Version: PayloadVersion,
		Type:    RoundPlayed,
		Payload: RoundPlayedPayloadV1{
			GameID:         game.ID,
			PlayerID:       playerID,
			PlayerChoice:   game.PlayerChoice,
			ComputerChoice: game.ComputerChoice,
			Winner:         game.Winner,
			Mode:           game.Mode,
			PlayedAt:       game.CreatedAt,
		},
		Metadata: metadata,
	}
}

// NewHistoryClearedEvent creates a new scoreboard cleared event
func NewHistoryClearedEvent() Event {
	return Event{
		Version: PayloadVersion,
		Type:    HistoryCleared,
		Payload: map[string]interface{}{"cleared_at": time.Now().UTC()},
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

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s (%s): %w", ErrMsgHandlersFailed, event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
