package history

import (
	"context"
	"fmt"

	"github.com/osse101/RPSLS_Go/internal/event"
	"github.com/osse101/RPSLS_Go/internal/logger"
)

// EventHandler records played rounds in the owning player's history
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new history event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.RoundPlayed, h.HandleRoundPlayed)
}

// HandleRoundPlayed records rounds that carry a player id
func (h *EventHandler) HandleRoundPlayed(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.RoundFromEvent(evt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDecodeRound, err)
	}

	if payload.PlayerID == nil {
		log.Debug(LogMsgRoundRecordSkipped, "game_id", payload.GameID)
		return nil
	}

	result := payload.Winner.Perspective()
	_, err = h.service.RecordGame(ctx, RecordInput{
		PlayerID:       *payload.PlayerID,
		PlayerChoice:   payload.PlayerChoice,
		ComputerChoice: payload.ComputerChoice,
		Result:         &result,
	})
	if err != nil {
		log.Warn(LogMsgRoundRecordFailed, "error", err, "player_id", *payload.PlayerID, "game_id", payload.GameID)
		return err
	}

	return nil
}
