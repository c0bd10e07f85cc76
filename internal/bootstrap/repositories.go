package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RPSLS_Go/internal/database/postgres"
	"github.com/osse101/RPSLS_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Game    repository.Game
	History repository.History
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Game:    postgres.NewGameRepository(dbPool),
		History: postgres.NewHistoryRepository(dbPool),
	}
}
