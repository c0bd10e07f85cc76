package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/RPSLS_Go/internal/event"
	"github.com/osse101/RPSLS_Go/internal/history"
	"github.com/osse101/RPSLS_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus       event.Bus
	HistoryService history.Service
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (round and history counters)
// - History recorder (persists rounds played by a registered player)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	history.NewEventHandler(deps.HistoryService).Register(deps.EventBus)
	slog.Info(LogMsgHistoryRecorderRegistered)

	return nil
}
