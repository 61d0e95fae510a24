package testhelpers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/events"
)

// MockWordRepository is a mock implementation of WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) FetchWordOfToday(ctx context.Context) (*entities.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Word), args.Error(1)
}

// MockAuthRepository is a mock implementation of AuthRepository
type MockAuthRepository struct {
	mock.Mock
	LoggedIn *events.Observable[bool]
}

func NewMockAuthRepository() *MockAuthRepository {
	return &MockAuthRepository{LoggedIn: events.NewObservable(false)}
}

func (m *MockAuthRepository) Login(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthRepository) IsLoggedIn() *events.Observable[bool] {
	return m.LoggedIn
}

// MockGameRepository is a mock implementation of GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) SaveGame(ctx context.Context, detail *entities.GameDetail) (*entities.GameDetail, error) {
	args := m.Called(ctx, detail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameDetail), args.Error(1)
}

func (m *MockGameRepository) GetGameContent(ctx context.Context, id int64) (*entities.GameDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameDetail), args.Error(1)
}

func (m *MockGameRepository) GetGameContentForWord(ctx context.Context, wordID string) (*entities.GameDetail, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameDetail), args.Error(1)
}

func (m *MockGameRepository) GetPlayedGames(ctx context.Context, from int64, size int) (*entities.GameHistoryPage, error) {
	args := m.Called(ctx, from, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameHistoryPage), args.Error(1)
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*entities.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings *entities.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockWordClient is a mock implementation of the word service adapter
type MockWordClient struct {
	mock.Mock
}

func (m *MockWordClient) FetchWordOfToday(ctx context.Context) (*entities.Word, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Word), args.Error(1)
}

func (m *MockWordClient) Login(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
