package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/RPSLS_Go/internal/bootstrap"
	"github.com/osse101/RPSLS_Go/internal/config"
	"github.com/osse101/RPSLS_Go/internal/database"
	"github.com/osse101/RPSLS_Go/internal/handler"
	"github.com/osse101/RPSLS_Go/internal/server"
	"github.com/osse101/RPSLS_Go/internal/worker"
)

// @title RPSLS API
// @version 1.0
// @description Rock Paper Scissors Lizard Spock game service
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)
	handler.InitValidator()

	ctx := context.Background()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, dbPool); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	eventBus := bootstrap.InitializeEventSystem()
	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos, eventBus)

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:       eventBus,
		HistoryService: services.History,
	}); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	cleanupWorker := worker.NewCleanupWorker(services.History, cfg.HistoryRetentionDays, cfg.CleanupInterval)
	cleanupWorker.Start()

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Dependencies{
		DBPool:         dbPool,
		GameService:    services.Game,
		HistoryService: services.History,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:        srv,
		CleanupWorker: cleanupWorker,
		DBPool:        dbPool,
	})

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
