package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/domain/interfaces"
	"github.com/juliencampergue/Hangman/events"

	log "github.com/sirupsen/logrus"
)

const (
	// GameMinScore is the score every game starts at.
	GameMinScore = 0
	// GameMaxScore is the number of wrong letters that loses a game.
	GameMaxScore = 11
)

// gameEngine implements the GameEngine interface. The registry is unbounded
// process-lifetime memory: a restart clears it, persisted games are the
// durable source of truth after completion.
type gameEngine struct {
	bus *events.Bus

	mu    sync.Mutex
	games map[string]*entities.Game
}

// NewGameEngine creates a new game engine
func NewGameEngine(bus *events.Bus) interfaces.GameEngine {
	return &gameEngine{
		bus:   bus,
		games: make(map[string]*entities.Game),
	}
}

// GameForWord returns the game registered for the word's id, creating and
// registering one when absent. The check-then-create sequence runs under the
// registry lock so concurrent callers always get the same instance.
func (e *gameEngine) GameForWord(word *entities.Word) (*entities.Game, error) {
	if word == nil {
		return nil, fmt.Errorf("word cannot be nil")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if game, ok := e.games[word.ID]; ok {
		return game, nil
	}

	game, err := entities.NewGame(word, GameMinScore, GameMaxScore)
	if err != nil {
		return nil, fmt.Errorf("failed to create game for word %s: %w", word.ID, err)
	}
	e.games[word.ID] = game

	log.WithFields(log.Fields{
		"word_id":  word.ID,
		"maxScore": GameMaxScore,
	}).Debug("Registered new game")

	e.bus.Emit(context.Background(), events.GameCreatedEvent{
		WordID:   word.ID,
		MinScore: GameMinScore,
		MaxScore: GameMaxScore,
	})

	return game, nil
}
