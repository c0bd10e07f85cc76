package repository

import (
	"context"
	"time"

	"github.com/osse101/RPSLS_Go/internal/domain"
)

// History defines the interface for player and game history persistence
type History interface {
	CreatePlayer(ctx context.Context, name string) (*domain.Player, error)
	// GetPlayer returns domain.ErrPlayerNotFound when the id is unknown
	GetPlayer(ctx context.Context, id int) (*domain.Player, error)

	// RecordGame stores rec and fills in its ID and PlayedAt
	RecordGame(ctx context.Context, rec *domain.HistoryRecord) error
	// GetGame returns domain.ErrGameNotFound when the id is unknown
	GetGame(ctx context.Context, id int) (*domain.HistoryRecord, error)
	// ListGames returns one page of records, newest first, and the unpaged total
	ListGames(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, int, error)

	CountResults(ctx context.Context, playerID int) (map[domain.Perspective]int, error)
	DeleteGamesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
