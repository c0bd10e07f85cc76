package repository

import (
	"context"

	"github.com/osse101/RPSLS_Go/internal/domain"
)

// Game defines the interface for the scoreboard of rounds played against the computer
type Game interface {
	SaveGame(ctx context.Context, game *domain.Game) error
	// ListRecentGames returns at most limit games ordered newest first
	ListRecentGames(ctx context.Context, limit int) ([]domain.Game, error)
	DeleteAllGames(ctx context.Context) (int64, error)
}
