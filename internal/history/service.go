package history

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/logger"
	"github.com/osse101/RPSLS_Go/internal/metrics"
	"github.com/osse101/RPSLS_Go/internal/repository"
	"github.com/osse101/RPSLS_Go/internal/rules"
)

// Service defines the interface for player history and statistics
type Service interface {
	CreatePlayer(ctx context.Context, name string) (*domain.Player, error)
	GetPlayer(ctx context.Context, id int) (*domain.Player, error)
	RecordGame(ctx context.Context, input RecordInput) (*domain.HistoryRecord, error)
	GetGame(ctx context.Context, id int) (*domain.HistoryRecord, error)
	ListGames(ctx context.Context, query ListQuery) (*GameList, error)
	PlayerStats(ctx context.Context, playerID int) (*domain.PlayerStats, error)
	Cleanup(ctx context.Context, days int) (int64, error)
}

// RecordInput describes a round to add to a player's history.
// The result and winning move are derived from the gestures.
type RecordInput struct {
	PlayerID       int
	PlayerChoice   domain.Gesture
	ComputerChoice domain.Gesture
	// Result is optional; when given it must match the derived result
	Result *domain.Perspective
}

// ListQuery filters a history listing. Result is the raw win/lose/tie filter.
type ListQuery struct {
	PlayerID *int
	Result   string
	Limit    int
	Offset   int
}

// GameList is one page of history records
type GameList struct {
	Total   int                    `json:"total"`
	Entries []domain.HistoryRecord `json:"entries"`
}

// Config tunes the statistics cache
type Config struct {
	StatsCacheSize int
	StatsCacheTTL  time.Duration
}

type service struct {
	repo  repository.History
	cache *statsCache
	now   func() time.Time
}

// NewService creates a new history service
func NewService(repo repository.History, cfg Config) Service {
	return &service{
		repo:  repo,
		cache: newStatsCache(cfg.StatsCacheSize, cfg.StatsCacheTTL),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreatePlayer registers a player with a 1..100 character name
func (s *service) CreatePlayer(ctx context.Context, name string) (*domain.Player, error) {
	// Names are stored NFC-normalized
	name = norm.NFC.String(strings.TrimSpace(name))
	if n := utf8.RuneCountInString(name); n == 0 || n > MaxPlayerNameLength {
		return nil, fmt.Errorf("%w: name must be 1 to %d characters", domain.ErrInvalidPlayer, MaxPlayerNameLength)
	}

	player, err := s.repo.CreatePlayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreatePlayer, err)
	}

	logger.FromContext(ctx).Info(LogMsgPlayerCreated, "player_id", player.ID)
	return player, nil
}

// GetPlayer loads a player and fills in wins, losses and ties
func (s *service) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	player, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPlayer, err)
	}

	stats, err := s.PlayerStats(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Wins = stats.Counts[domain.PerspectiveWin]
	player.Losses = stats.Counts[domain.PerspectiveLose]
	player.Ties = stats.Counts[domain.PerspectiveTie]
	return player, nil
}

// RecordGame resolves the round and appends it to the player's history
func (s *service) RecordGame(ctx context.Context, input RecordInput) (*domain.HistoryRecord, error) {
	if input.PlayerID < 1 {
		return nil, fmt.Errorf("%w: player id must be positive", domain.ErrInvalidPlayer)
	}
	if !input.PlayerChoice.IsValid() || !input.ComputerChoice.IsValid() {
		return nil, fmt.Errorf("%w: player %d, computer %d", domain.ErrInvalidGesture,
			int(input.PlayerChoice), int(input.ComputerChoice))
	}

	res := rules.Resolve(input.PlayerChoice, input.ComputerChoice)
	result := res.Outcome.Perspective()
	if input.Result != nil && *input.Result != result {
		return nil, fmt.Errorf("%w: %s vs %s is a %s, not a %s", domain.ErrInvalidResult,
			input.PlayerChoice, input.ComputerChoice, result, *input.Result)
	}

	rec := &domain.HistoryRecord{
		PlayerID:       input.PlayerID,
		PlayerChoice:   input.PlayerChoice,
		ComputerChoice: input.ComputerChoice,
		Result:         result,
		WinningMove:    res.WinningMove,
		PlayedAt:       s.now(),
	}

	if err := s.repo.RecordGame(ctx, rec); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecordGame, err)
	}
	s.cache.Invalidate(input.PlayerID)

	logger.FromContext(ctx).Debug(LogMsgGameRecorded, "player_id", rec.PlayerID, "game_id", rec.ID, "result", string(result))
	return rec, nil
}

// GetGame loads one history record
func (s *service) GetGame(ctx context.Context, id int) (*domain.HistoryRecord, error) {
	rec, err := s.repo.GetGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetGame, err)
	}
	return rec, nil
}

// ListGames returns a filtered page of history.
// An unrecognised result filter yields an empty page rather than an error.
func (s *service) ListGames(ctx context.Context, query ListQuery) (*GameList, error) {
	if query.Limit == 0 {
		query.Limit = DefaultListLimit
	}
	if query.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}
	if query.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrInvalidInput)
	}

	filter := domain.HistoryFilter{
		PlayerID: query.PlayerID,
		Limit:    query.Limit,
		Offset:   query.Offset,
	}

	if query.Result != "" {
		result, err := domain.ParsePerspective(strings.ToLower(query.Result))
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgUnknownResultFilter, "result", query.Result)
			return &GameList{Total: 0, Entries: []domain.HistoryRecord{}}, nil
		}
		filter.Result = &result
	}

	entries, total, err := s.repo.ListGames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListGames, err)
	}
	if entries == nil {
		entries = []domain.HistoryRecord{}
	}

	return &GameList{Total: total, Entries: entries}, nil
}

// PlayerStats returns win/lose/tie counts for a player.
// Unknown players report zero counts.
func (s *service) PlayerStats(ctx context.Context, playerID int) (*domain.PlayerStats, error) {
	if stats, ok := s.cache.Get(playerID); ok {
		return &stats, nil
	}

	counts, err := s.repo.CountResults(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetStats, err)
	}

	stats := domain.NewPlayerStats(playerID, counts)
	s.cache.Set(stats)
	return &stats, nil
}

// Cleanup deletes records older than days and returns how many were removed
func (s *service) Cleanup(ctx context.Context, days int) (int64, error) {
	if days < 1 {
		return 0, fmt.Errorf("%w: days must be positive", domain.ErrInvalidInput)
	}

	cutoff := s.now().AddDate(0, 0, -days)
	deleted, err := s.repo.DeleteGamesBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToCleanup, err)
	}

	if deleted > 0 {
		// Counts of any player may have changed
		s.cache.Clear()
		metrics.HistoryCleanupDeleted.Add(float64(deleted))
	}

	logger.FromContext(ctx).Info(LogMsgHistoryCleanup, "days", days, "deleted", deleted)
	return deleted, nil
}
