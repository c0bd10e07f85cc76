package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/game"
	"github.com/osse101/RPSLS_Go/internal/history"
)

// MockGameService mocks the game.Service interface
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Play(ctx context.Context, input game.PlayInput) (*domain.Game, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGameService) RandomChoice(ctx context.Context) domain.Gesture {
	args := m.Called(ctx)
	return args.Get(0).(domain.Gesture)
}

func (m *MockGameService) Choices() []domain.Gesture {
	args := m.Called()
	return args.Get(0).([]domain.Gesture)
}

func (m *MockGameService) RecentGames(ctx context.Context, limit int) ([]domain.Game, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Game), args.Error(1)
}

func (m *MockGameService) ClearHistory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockHistoryService mocks the history.Service interface
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) CreatePlayer(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockHistoryService) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockHistoryService) RecordGame(ctx context.Context, input history.RecordInput) (*domain.HistoryRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryRecord), args.Error(1)
}

func (m *MockHistoryService) GetGame(ctx context.Context, id int) (*domain.HistoryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryRecord), args.Error(1)
}

func (m *MockHistoryService) ListGames(ctx context.Context, query history.ListQuery) (*history.GameList, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*history.GameList), args.Error(1)
}

func (m *MockHistoryService) PlayerStats(ctx context.Context, playerID int) (*domain.PlayerStats, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerStats), args.Error(1)
}

func (m *MockHistoryService) Cleanup(ctx context.Context, days int) (int64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(int64), args.Error(1)
}
