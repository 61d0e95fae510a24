package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/events"
)

func TestGameEngine_GameForWord_ReturnsSameInstance(t *testing.T) {
	t.Parallel()

	engine := NewGameEngine(events.NewBus())
	word, err := entities.NewWord("w1", 1700000000000, "CAT")
	require.NoError(t, err)

	first, err := engine.GameForWord(word)
	require.NoError(t, err)
	second, err := engine.GameForWord(word)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, GameMaxScore, first.MaxScore())
	assert.Equal(t, GameMinScore, first.Score().Get())
}

func TestGameEngine_GameForWord_DistinctWords(t *testing.T) {
	t.Parallel()

	engine := NewGameEngine(events.NewBus())
	word1, err := entities.NewWord("w1", 1700000000000, "CAT")
	require.NoError(t, err)
	word2, err := entities.NewWord("w2", 1700086400000, "DOG")
	require.NoError(t, err)

	game1, err := engine.GameForWord(word1)
	require.NoError(t, err)
	game2, err := engine.GameForWord(word2)
	require.NoError(t, err)

	assert.NotSame(t, game1, game2)
}

func TestGameEngine_GameForWord_NilWord(t *testing.T) {
	t.Parallel()

	engine := NewGameEngine(events.NewBus())
	game, err := engine.GameForWord(nil)
	assert.Error(t, err)
	assert.Nil(t, game)
}

func TestGameEngine_GameForWord_ConcurrentCallsSingleInstance(t *testing.T) {
	t.Parallel()

	engine := NewGameEngine(events.NewBus())
	word, err := entities.NewWord("w1", 1700000000000, "CAT")
	require.NoError(t, err)

	const callers = 100
	games := make([]*entities.Game, callers)

	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			game, err := engine.GameForWord(word)
			assert.NoError(t, err)
			games[i] = game
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Same(t, games[0], games[i])
	}
}
