package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"github.com/osse101/RPSLS_Go/internal/config"
	"github.com/osse101/RPSLS_Go/internal/logger"
)

// SetupLogger initializes the process-wide slog logger from configuration
// and writes the startup banner.
func SetupLogger(cfg *config.Config) {
	SetupLoggerWithWriter(cfg, os.Stdout)
}

// SetupLoggerWithWriter is SetupLogger with an explicit output
func SetupLoggerWithWriter(cfg *config.Config, w io.Writer) {
	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == "dev",
	)
	logger.InitLoggerWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel().String(), "format", cfg.LogFormat)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"auth_enabled", cfg.AuthEnabled())

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"allowed_origins", cfg.AllowedOrigins,
		"random_api_url", cfg.RandomAPIURL,
		"smart_window", cfg.SmartWindow,
		"history_retention_days", cfg.HistoryRetentionDays)
}
