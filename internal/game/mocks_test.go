package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RPSLS_Go/internal/domain"
	"github.com/osse101/RPSLS_Go/internal/event"
)

// MockRepository implements [repository.Game]
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveGame(ctx context.Context, game *domain.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockRepository) ListRecentGames(ctx context.Context, limit int) ([]domain.Game, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Game), args.Error(1)
}

func (m *MockRepository) DeleteAllGames(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSource implements GestureSource
type MockSource struct {
	mock.Mock
}

func (m *MockSource) NextGesture(ctx context.Context) domain.Gesture {
	args := m.Called(ctx)
	return args.Get(0).(domain.Gesture)
}

// MockStrategy implements CounterStrategy
type MockStrategy struct {
	mock.Mock
}

func (m *MockStrategy) ChooseCounter(ctx context.Context, history domain.RecentFirst) domain.Gesture {
	args := m.Called(ctx, history)
	return args.Get(0).(domain.Gesture)
}

// MockBus implements [event.Bus]
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
