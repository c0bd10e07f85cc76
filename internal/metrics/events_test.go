package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/event"
)

func TestEventMetricsCollector_RoundPlayed(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	modeBefore := counterValue(t, AIMode.WithLabelValues("smart"))
	outcomeBefore := counterValue(t, AIOutcome.WithLabelValues("smart", "computer"))

	game := &domain.Game{
		ID:             uuid.New(),
		PlayerChoice:   domain.Rock,
		ComputerChoice: domain.Paper,
		Winner:         domain.WinnerComputer,
		Mode:           domain.ModeSmart,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, bus.Publish(context.Background(), event.NewRoundPlayedEvent(game, nil, "")))

	assert.Equal(t, modeBefore+1, counterValue(t, AIMode.WithLabelValues("smart")))
	assert.Equal(t, outcomeBefore+1, counterValue(t, AIOutcome.WithLabelValues("smart", "computer")))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	before := counterValue(t, EventHandlerErrors.WithLabelValues(string(event.RoundPlayed)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Version: event.PayloadVersion,
		Type:    event.RoundPlayed,
		Payload: "not a payload",
	})

	require.NoError(t, err)
	assert.Equal(t, before+1, counterValue(t, EventHandlerErrors.WithLabelValues(string(event.RoundPlayed))))
}
