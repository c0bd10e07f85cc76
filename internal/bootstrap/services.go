package bootstrap

import (
	"log/slog"
	"net/http"

	"github.com/osse101/RPSLS_Go/internal/config"
	"github.com/osse101/RPSLS_Go/internal/entropy"
	"github.com/osse101/RPSLS_Go/internal/event"
	"github.com/osse101/RPSLS_Go/internal/game"
	"github.com/osse101/RPSLS_Go/internal/history"
	"github.com/osse101/RPSLS_Go/internal/strategy"
)

// Services holds the application services exposed over HTTP
type Services struct {
	Game    game.Service
	History history.Service
}

// InitializeServices wires the random source, the adaptive strategy and the
// domain services on top of the repositories and event bus.
func InitializeServices(cfg *config.Config, repos *Repositories, bus event.Bus) *Services {
	if cfg.RandomAPIURL == "" {
		slog.Info(LogMsgRandomProviderDisabled)
	} else {
		slog.Info(LogMsgRandomProviderConfigured, "url", cfg.RandomAPIURL, "timeout", cfg.RandomAPITimeout)
	}

	source := entropy.NewSource(entropy.Config{
		URL:     cfg.RandomAPIURL,
		Timeout: cfg.RandomAPITimeout,
	}, &http.Client{}, nil)
	adaptive := strategy.NewAdaptive(source, cfg.SmartWindow)

	return &Services{
		Game: game.NewService(repos.Game, source, adaptive, bus, cfg.SmartHistoryLimit),
		History: history.NewService(repos.History, history.Config{
			StatsCacheSize: cfg.StatsCacheSize,
			StatsCacheTTL:  cfg.StatsCacheTTL,
		}),
	}
}
