package history

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RPSLS_Go/internal/domain"
)

// MockRepository implements [repository.History]
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePlayer(ctx context.Context, name string) (*domain.Player, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) GetPlayer(ctx context.Context, id int) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) RecordGame(ctx context.Context, rec *domain.HistoryRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) GetGame(ctx context.Context, id int) (*domain.HistoryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryRecord), args.Error(1)
}

func (m *MockRepository) ListGames(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.HistoryRecord), args.Int(1), args.Error(2)
}

func (m *MockRepository) CountResults(ctx context.Context, playerID int) (map[domain.Perspective]int, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Perspective]int), args.Error(1)
}

func (m *MockRepository) DeleteGamesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
