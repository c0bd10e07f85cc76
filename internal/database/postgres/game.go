package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/repository"
)

type gameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new PostgreSQL game repository
func NewGameRepository(db *pgxpool.Pool) repository.Game {
	return &gameRepository{db: db}
}

// SaveGame inserts a played round. A zero CreatedAt is stamped with the current time.
func (r *gameRepository) SaveGame(ctx context.Context, game *domain.Game) error {
	query := `
		INSERT INTO games (id, player_choice, computer_choice, winner, mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, query,
		game.ID,
		int16(game.PlayerChoice),
		int16(game.ComputerChoice),
		string(game.Winner),
		string(game.Mode),
		game.CreatedAt,
	)
	if err != nil {
		return dbError(ErrMsgFailedToSaveGame, err)
	}
	return nil
}

// ListRecentGames returns the latest games, newest first
func (r *gameRepository) ListRecentGames(ctx context.Context, limit int) ([]domain.Game, error) {
	query := `
		SELECT id, player_choice, computer_choice, winner, mode, created_at
		FROM games
		ORDER BY created_at DESC, id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, dbError(ErrMsgFailedToListGames, err)
	}
	defer rows.Close()

	games := []domain.Game{}
	for rows.Next() {
		var (
			g              domain.Game
			playerChoice   int16
			computerChoice int16
			winner, mode   string
		)
		if err := rows.Scan(&g.ID, &playerChoice, &computerChoice, &winner, &mode, &g.CreatedAt); err != nil {
			return nil, dbError(ErrMsgFailedToScanGame, err)
		}

		if g.PlayerChoice, err = gestureFromColumn(playerChoice); err != nil {
			return nil, err
		}
		if g.ComputerChoice, err = gestureFromColumn(computerChoice); err != nil {
			return nil, err
		}
		if g.Winner, err = domain.ParseWinner(winner); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidStoredOutcome, err)
		}
		if g.Mode, err = domain.ParseMode(mode); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidStoredOutcome, err)
		}

		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToListGames, err)
	}

	return games, nil
}

// DeleteAllGames clears the scoreboard
func (r *gameRepository) DeleteAllGames(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM games`)
	if err != nil {
		return 0, dbError(ErrMsgFailedToDeleteGames, err)
	}
	return tag.RowsAffected(), nil
}
