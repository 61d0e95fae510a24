package interfaces

import (
	"context"

	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/events"
)

// WordRepository defines the interface for word-of-the-day access
type WordRepository interface {
	// FetchWordOfToday retrieves the word playable today from the remote
	// word service.
	FetchWordOfToday(ctx context.Context) (*entities.Word, error)
}

// AuthRepository defines the interface for backend authentication
type AuthRepository interface {
	// Login authenticates against the backend. Repeated calls while
	// already logged in simply reconfirm status.
	Login(ctx context.Context) (bool, error)

	// IsLoggedIn is the observable login state.
	IsLoggedIn() *events.Observable[bool]
}

// GameRepository defines the interface for persisted game access
type GameRepository interface {
	// SaveGame persists a finished game snapshot and returns the stored
	// record with its assigned id. The save is verified by a read-back of
	// the fresh id; a failed read-back is reported as
	// domain.ErrUnavailableGameDetail.
	SaveGame(ctx context.Context, detail *entities.GameDetail) (*entities.GameDetail, error)

	// GetGameContent retrieves a persisted game by its id, or nil when no
	// such game exists.
	GetGameContent(ctx context.Context, id int64) (*entities.GameDetail, error)

	// GetGameContentForWord retrieves the persisted game for a word id, or
	// nil when the word has never been completed.
	GetGameContentForWord(ctx context.Context, wordID string) (*entities.GameDetail, error)

	// GetPlayedGames returns one page of played games, newest first.
	// from <= 0 means the most recent page; otherwise items strictly older
	// than from are returned, up to size items.
	GetPlayedGames(ctx context.Context, from int64, size int) (*entities.GameHistoryPage, error)
}

// SettingsRepository defines the interface for settings persistence
type SettingsRepository interface {
	// GetSettings reads the stored settings, creating defaults when none
	// were saved yet.
	GetSettings(ctx context.Context) (*entities.Settings, error)

	// SaveSettings writes the settings as a whole.
	SaveSettings(ctx context.Context, settings *entities.Settings) error
}
