package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RPSLS_Go/internal/database"
	"github.com/osse101/RPSLS_Go/internal/server"
	"github.com/osse101/RPSLS_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server        *server.Server
	CleanupWorker *worker.CleanupWorker
	DBPool        database.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Background workers (cancel pending timers, wait for running jobs)
// 3. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.CleanupWorker != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		if err := components.CleanupWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgCleanupWorkerStopFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
