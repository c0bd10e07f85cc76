package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/repository"
)

type historyRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository creates a new PostgreSQL history repository
func NewHistoryRepository(db *pgxpool.Pool) repository.History {
	return &historyRepository{db: db}
}

// CreatePlayer registers a new player
func (r *historyRepository) CreatePlayer(ctx context.Context, name string) (*domain.Player, error) {
	query := `
		INSERT INTO players (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`

	var p domain.Player
	if err := r.db.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
		return nil, dbError(ErrMsgFailedToCreatePlayer, err)
	}
	return &p, nil
}

// GetPlayer loads a player without statistics
func (r *historyRepository) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	query := `SELECT id, name, created_at FROM players WHERE id = $1`

	var p domain.Player
	err := r.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", domain.ErrPlayerNotFound, id)
	}
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetPlayer, err)
	}
	return &p, nil
}

// RecordGame appends a round to a player's history
func (r *historyRepository) RecordGame(ctx context.Context, rec *domain.HistoryRecord) error {
	query := `
		INSERT INTO game_history (player_id, player_choice, computer_choice, result, winning_move, played_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now().UTC()
	}

	var winningMove *string
	if rec.WinningMove != "" {
		winningMove = &rec.WinningMove
	}

	err := r.db.QueryRow(ctx, query,
		rec.PlayerID,
		int16(rec.PlayerChoice),
		int16(rec.ComputerChoice),
		string(rec.Result),
		winningMove,
		rec.PlayedAt,
	).Scan(&rec.ID)
	if isPgError(err, PgErrorCodeForeignKeyViolation) {
		return fmt.Errorf("%w: id %d", domain.ErrPlayerNotFound, rec.PlayerID)
	}
	if err != nil {
		return dbError(ErrMsgFailedToRecordGame, err)
	}
	return nil
}

// GetGame loads one history record
func (r *historyRepository) GetGame(ctx context.Context, id int) (*domain.HistoryRecord, error) {
	query := `
		SELECT id, player_id, player_choice, computer_choice, result, winning_move, played_at
		FROM game_history
		WHERE id = $1
	`

	rec, err := scanRecord(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", domain.ErrGameNotFound, id)
	}
	if err != nil {
		return nil, dbError(ErrMsgFailedToGetGame, err)
	}
	return rec, nil
}

// ListGames returns one page of history, newest first, plus the unpaged total
func (r *historyRepository) ListGames(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, int, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argNum := 1

	if filter.PlayerID != nil {
		fmt.Fprintf(&where, " AND player_id = $%d", argNum)
		args = append(args, *filter.PlayerID)
		argNum++
	}

	if filter.Result != nil {
		fmt.Fprintf(&where, " AND result = $%d", argNum)
		args = append(args, string(*filter.Result))
		argNum++
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM game_history"+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, dbError(ErrMsgFailedToCountGames, err)
	}

	query := `SELECT id, player_id, player_choice, computer_choice, result, winning_move, played_at
		FROM game_history` + where.String() +
		fmt.Sprintf(" ORDER BY played_at DESC, id DESC LIMIT $%d OFFSET $%d", argNum, argNum+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dbError(ErrMsgFailedToListGames, err)
	}
	defer rows.Close()

	records := []domain.HistoryRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, dbError(ErrMsgFailedToScanGame, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dbError(ErrMsgFailedToListGames, err)
	}

	return records, total, nil
}

// CountResults groups a player's records by result
func (r *historyRepository) CountResults(ctx context.Context, playerID int) (map[domain.Perspective]int, error) {
	query := `
		SELECT result, COUNT(*)
		FROM game_history
		WHERE player_id = $1
		GROUP BY result
	`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, dbError(ErrMsgFailedToCountResults, err)
	}
	defer rows.Close()

	counts := make(map[domain.Perspective]int, 3)
	for rows.Next() {
		var (
			result string
			count  int
		)
		if err := rows.Scan(&result, &count); err != nil {
			return nil, dbError(ErrMsgFailedToCountResults, err)
		}
		counts[domain.Perspective(result)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(ErrMsgFailedToCountResults, err)
	}

	return counts, nil
}

// DeleteGamesBefore removes records played before cutoff
func (r *historyRepository) DeleteGamesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM game_history WHERE played_at < $1`, cutoff)
	if err != nil {
		return 0, dbError(ErrMsgFailedToDeleteHistory, err)
	}
	return tag.RowsAffected(), nil
}

// scanRecord reads one game_history row
func scanRecord(row pgx.Row) (*domain.HistoryRecord, error) {
	var (
		rec            domain.HistoryRecord
		playerChoice   int16
		computerChoice int16
		result         string
		winningMove    *string
	)

	if err := row.Scan(&rec.ID, &rec.PlayerID, &playerChoice, &computerChoice, &result, &winningMove, &rec.PlayedAt); err != nil {
		return nil, err
	}

	var err error
	if rec.PlayerChoice, err = gestureFromColumn(playerChoice); err != nil {
		return nil, err
	}
	if rec.ComputerChoice, err = gestureFromColumn(computerChoice); err != nil {
		return nil, err
	}
	if rec.Result, err = domain.ParsePerspective(result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidStoredOutcome, err)
	}
	if winningMove != nil {
		rec.WinningMove = *winningMove
	}

	return &rec, nil
}
