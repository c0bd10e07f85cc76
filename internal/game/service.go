package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/event"
	"github.com/osse101/RPSLS_Go/internal/logger"
	"github.com/osse101/RPSLS_Go/internal/repository"
	"github.com/osse101/RPSLS_Go/internal/rules"
)

// Service defines the interface for playing rounds against the computer
type Service interface {
	Play(ctx context.Context, input PlayInput) (*domain.Game, error)
	RandomChoice(ctx context.Context) domain.Gesture
	Choices() []domain.Gesture
	RecentGames(ctx context.Context, limit int) ([]domain.Game, error)
	ClearHistory(ctx context.Context) error
}

// GestureSource draws the computer's gesture in random mode
type GestureSource interface {
	NextGesture(ctx context.Context) domain.Gesture
}

// CounterStrategy picks the computer's gesture in smart mode
type CounterStrategy interface {
	ChooseCounter(ctx context.Context, history domain.RecentFirst) domain.Gesture
}

// PlayInput is one round request. The player always takes the first position.
type PlayInput struct {
	Player   domain.Gesture
	Mode     domain.Mode
	PlayerID *int // optional; when set the round is also added to that player's history
}

type service struct {
	repo         repository.Game
	source       GestureSource
	strategy     CounterStrategy
	eventBus     event.Bus
	historyLimit int
	now          func() time.Time
}

// NewService creates a new game service.
// historyLimit < 1 uses DefaultHistoryLimit.
func NewService(repo repository.Game, source GestureSource, strategy CounterStrategy, eventBus event.Bus, historyLimit int) Service {
	if historyLimit < 1 {
		historyLimit = DefaultHistoryLimit
	}
	return &service{
		repo:         repo,
		source:       source,
		strategy:     strategy,
		eventBus:     eventBus,
		historyLimit: historyLimit,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Play resolves one round, persists it and announces it on the event bus
func (s *service) Play(ctx context.Context, input PlayInput) (*domain.Game, error) {
	log := logger.FromContext(ctx)

	if !input.Player.IsValid() {
		return nil, fmt.Errorf("%w: id %d", domain.ErrInvalidGesture, int(input.Player))
	}

	mode := input.Mode
	if mode == "" {
		mode = domain.ModeRandom
	}

	var computer domain.Gesture
	switch mode {
	case domain.ModeSmart:
		history, err := s.recentPlayerGestures(ctx)
		if err != nil {
			return nil, err
		}
		computer = s.strategy.ChooseCounter(ctx, history)
	case domain.ModeRandom:
		computer = s.source.NextGesture(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
	}

	res := rules.Resolve(input.Player, computer)

	game := &domain.Game{
		ID:             uuid.New(),
		PlayerChoice:   input.Player,
		ComputerChoice: computer,
		Winner:         res.Outcome.Winner(),
		Mode:           mode,
		CreatedAt:      s.now(),
	}

	if err := s.repo.SaveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveGame, err)
	}

	log.Info(LogMsgRoundPlayed,
		"mode", string(mode),
		"player_choice", input.Player.String(),
		"computer_choice", computer.String(),
		"outcome", string(game.Winner))

	s.publish(ctx, event.NewRoundPlayedEvent(game, input.PlayerID, logger.GetRequestID(ctx)))

	return game, nil
}

// recentPlayerGestures loads the latest rounds and keeps the player's gestures, newest first
func (s *service) recentPlayerGestures(ctx context.Context) (domain.RecentFirst, error) {
	games, err := s.repo.ListRecentGames(ctx, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadHistory, err)
	}

	history := make(domain.RecentFirst, 0, len(games))
	for _, g := range games {
		history = append(history, g.PlayerChoice)
	}

	logger.FromContext(ctx).Debug(LogMsgHistoryLoadForStrat, "rounds", len(history))
	return history, nil
}

// RandomChoice draws a single gesture from the entropy source
func (s *service) RandomChoice(ctx context.Context) domain.Gesture {
	return s.source.NextGesture(ctx)
}

// Choices lists every gesture in declared order
func (s *service) Choices() []domain.Gesture {
	return domain.AllGestures()
}

// RecentGames returns the latest scoreboard entries. A zero limit uses the default.
func (s *service) RecentGames(ctx context.Context, limit int) ([]domain.Game, error) {
	if limit == 0 {
		limit = DefaultRecentLimit
	}
	if limit < 1 || limit > MaxRecentLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrInvalidInput, MaxRecentLimit)
	}

	games, err := s.repo.ListRecentGames(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListGames, err)
	}
	return games, nil
}

// ClearHistory removes every scoreboard entry
func (s *service) ClearHistory(ctx context.Context) error {
	deleted, err := s.repo.DeleteAllGames(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToClear, err)
	}

	logger.FromContext(ctx).Info(LogMsgHistoryCleared, "deleted", deleted)
	s.publish(ctx, event.NewHistoryClearedEvent())
	return nil
}

// publish hands an event to the bus. Subscriber failures never fail the round.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
