package bootstrap

import (
	"log/slog"

	"github.com/osse101/RPSLS_Go/internal/event"
)

// InitializeEventSystem creates the in-process event bus.
// Publishing is synchronous so subscribers have run when Publish returns.
func InitializeEventSystem() *event.MemoryBus {
	eventBus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return eventBus
}
