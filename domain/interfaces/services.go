package interfaces

import (
	"context"

	"github.com/juliencampergue/Hangman/domain/entities"
)

// GameEngine guarantees at most one live game instance per word id for the
// process lifetime.
type GameEngine interface {
	// GameForWord returns the existing game for the word's id or atomically
	// creates and registers one.
	GameForWord(word *entities.Word) (*entities.Game, error)
}

// WordClient is the adapter contract of the remote word service. The wire
// protocol lives behind this boundary.
type WordClient interface {
	// FetchWordOfToday fetches today's word. Transport failures are
	// reported as domain.ErrNetwork, malformed words as
	// domain.ErrInvalidFetchedWord.
	FetchWordOfToday(ctx context.Context) (*entities.Word, error)

	// Login authenticates the client. The call honors context
	// cancellation on the waiting side only; the underlying request may
	// still complete in the background and is then ignored.
	Login(ctx context.Context) (bool, error)
}
