package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juliencampergue/Hangman/domain"
)

func newTestGame(t *testing.T, text string) *Game {
	t.Helper()
	word, err := NewWord("w1", 1700000000000, text)
	require.NoError(t, err)
	game, err := NewGame(word, 0, 11)
	require.NoError(t, err)
	return game
}

func TestNewGame_Validation(t *testing.T) {
	t.Parallel()

	word, err := NewWord("w1", 1700000000000, "CAT")
	require.NoError(t, err)

	tests := []struct {
		name     string
		word     *Word
		minScore int
		maxScore int
		wantErr  bool
	}{
		{name: "valid", word: word, minScore: 0, maxScore: 11},
		{name: "nil word", word: nil, minScore: 0, maxScore: 11, wantErr: true},
		{name: "negative min score", word: word, minScore: -1, maxScore: 11, wantErr: true},
		{name: "max not above min", word: word, minScore: 5, maxScore: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			game, err := NewGame(tt.word, tt.minScore, tt.maxScore)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, game)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, GameStateNotStarted, game.State().Get())
				assert.Equal(t, tt.minScore, game.Score().Get())
			}
		})
	}
}

func TestGame_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, "CAT")

	assert.True(t, game.Start())
	assert.Equal(t, GameStatePlaying, game.State().Get())

	firstPlayTime := game.PlayTime()
	assert.False(t, game.Start())
	assert.Equal(t, GameStatePlaying, game.State().Get())
	assert.GreaterOrEqual(t, game.PlayTime(), firstPlayTime)
}

func TestGame_PlayLetterOutsidePlayingState(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, "CAT")

	accepted, err := game.PlayLetter('C')
	assert.ErrorIs(t, err, domain.ErrGameNotStarted)
	assert.False(t, accepted)

	game.Start()
	for _, r := range "CAT" {
		_, err := game.PlayLetter(r)
		require.NoError(t, err)
	}
	require.Equal(t, GameStateOverSuccess, game.State().Get())

	accepted, err = game.PlayLetter('X')
	assert.ErrorIs(t, err, domain.ErrGameAlreadyEnded)
	assert.False(t, accepted)
}

func TestGame_PlayLetter_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup []rune
		play  rune
	}{
		{name: "digit", play: '3'},
		{name: "punctuation", play: '!'},
		{name: "space", play: ' '},
		{name: "replayed letter", setup: []rune{'C'}, play: 'C'},
		{name: "replayed letter different case", setup: []rune{'C'}, play: 'c'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			game := newTestGame(t, "CAT")
			game.Start()
			for _, r := range tt.setup {
				_, err := game.PlayLetter(r)
				require.NoError(t, err)
			}

			scoreBefore := game.Score().Get()
			lettersBefore := len(game.PlayedLetters().Get())

			accepted, err := game.PlayLetter(tt.play)
			assert.NoError(t, err)
			assert.False(t, accepted)
			assert.Equal(t, scoreBefore, game.Score().Get())
			assert.Len(t, game.PlayedLetters().Get(), lettersBefore)
			assert.Equal(t, GameStatePlaying, game.State().Get())
		})
	}
}

func TestGame_WinScenario(t *testing.T) {
	t.Parallel()

	// CAT with one wrong guess interleaved: win on the last distinct
	// correct letter, score 1.
	game := newTestGame(t, "CAT")
	game.Start()

	plays := []struct {
		letter    rune
		wantState GameState
		wantScore int
	}{
		{'C', GameStatePlaying, 0},
		{'A', GameStatePlaying, 0},
		{'X', GameStatePlaying, 1},
		{'T', GameStateOverSuccess, 1},
	}

	for _, play := range plays {
		accepted, err := game.PlayLetter(play.letter)
		require.NoError(t, err)
		assert.True(t, accepted)
		assert.Equal(t, play.wantState, game.State().Get())
		assert.Equal(t, play.wantScore, game.Score().Get())
	}

	assert.Len(t, game.PlayedLetters().Get(), 4)
}

func TestGame_WinIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, "Cat")
	game.Start()

	for _, r := range "cat" {
		accepted, err := game.PlayLetter(r)
		require.NoError(t, err)
		assert.True(t, accepted)
	}

	assert.Equal(t, GameStateOverSuccess, game.State().Get())
	assert.Equal(t, "Cat", game.MaskedWord())
}

func TestGame_WinCountsDistinctLetters(t *testing.T) {
	t.Parallel()

	// LLAMA has three distinct letters; the game must not end before all
	// of them were played.
	game := newTestGame(t, "LLAMA")
	game.Start()

	game.PlayLetter('L')
	game.PlayLetter('A')
	assert.Equal(t, GameStatePlaying, game.State().Get())

	game.PlayLetter('M')
	assert.Equal(t, GameStateOverSuccess, game.State().Get())
}

func TestGame_WinWithNonLetterCharacters(t *testing.T) {
	t.Parallel()

	// Hyphens can never be guessed, so the win condition must be met once
	// every guessable letter has been found.
	game := newTestGame(t, "GO-KART")
	game.Start()

	letters := []rune("GOKART")
	for i, r := range letters {
		accepted, err := game.PlayLetter(r)
		require.NoError(t, err)
		assert.True(t, accepted)

		if i < len(letters)-1 {
			assert.Equal(t, GameStatePlaying, game.State().Get())
		}
	}

	assert.Equal(t, GameStateOverSuccess, game.State().Get())
	assert.Equal(t, 0, game.Score().Get())
}

func TestGame_LossScenario(t *testing.T) {
	t.Parallel()

	// Eleven distinct wrong letters: failure exactly on the eleventh,
	// never before.
	game := newTestGame(t, "CAT")
	game.Start()

	wrong := []rune("BDEFGHIJKLM")
	require.Len(t, wrong, 11)

	for i, r := range wrong {
		accepted, err := game.PlayLetter(r)
		require.NoError(t, err)
		assert.True(t, accepted)
		assert.Equal(t, i+1, game.Score().Get())

		if i < len(wrong)-1 {
			assert.Equal(t, GameStatePlaying, game.State().Get())
		}
	}

	assert.Equal(t, GameStateOverFailure, game.State().Get())
	assert.Equal(t, 11, game.Score().Get())
}

func TestGame_PlayTime(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, "CAT")
	assert.Equal(t, InvalidPlayTime, game.PlayTime())

	game.Start()
	assert.GreaterOrEqual(t, game.PlayTime(), time.Duration(0))

	for _, r := range "CAT" {
		game.PlayLetter(r)
	}
	require.True(t, game.State().Get().IsOver())

	frozen := game.PlayTime()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, frozen, game.PlayTime())
}

func TestGame_DetailSnapshot(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, "CAT")
	game.Start()
	game.PlayLetter('C')
	game.PlayLetter('X')

	detail := game.Detail()
	assert.Equal(t, UnsavedGameID, detail.ID)
	assert.False(t, detail.IsSaved())
	assert.False(t, detail.Played)
	assert.False(t, detail.Result)
	assert.Equal(t, int64(1700000000000), detail.Date)
	require.Len(t, detail.PlayedLetters, 2)
	assert.Equal(t, Letter{Letter: 'C', GoodLetter: true}, detail.PlayedLetters[0])
	assert.Equal(t, Letter{Letter: 'X', GoodLetter: false}, detail.PlayedLetters[1])

	// The snapshot must not alias the live letter sequence.
	game.PlayLetter('A')
	assert.Len(t, detail.PlayedLetters, 2)

	game.PlayLetter('T')
	finished := game.Detail()
	assert.True(t, finished.Played)
	assert.True(t, finished.Result)
	assert.GreaterOrEqual(t, finished.PlayDuration, time.Duration(0))
}

func TestGame_ObservablesReplayAndNotifyInOrder(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, "CAT")

	var states []GameState
	unsubscribe := game.State().Subscribe(func(state GameState) {
		states = append(states, state)
	})
	defer unsubscribe()

	var scores []int
	game.Score().Subscribe(func(score int) {
		scores = append(scores, score)
	})

	var letterCounts []int
	game.PlayedLetters().Subscribe(func(letters []Letter) {
		letterCounts = append(letterCounts, len(letters))
	})

	game.Start()
	game.PlayLetter('C')
	game.PlayLetter('X')
	game.PlayLetter('A')
	game.PlayLetter('T')

	assert.Equal(t, []GameState{GameStateNotStarted, GameStatePlaying, GameStateOverSuccess}, states)
	assert.Equal(t, []int{0, 1}, scores)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, letterCounts)
}

func TestGame_MaskedWord(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, "CAT")
	game.Start()

	assert.Equal(t, "___", game.MaskedWord())
	game.PlayLetter('A')
	assert.Equal(t, "_A_", game.MaskedWord())
	game.PlayLetter('X')
	assert.Equal(t, "_A_", game.MaskedWord())
}

func TestGame_MaskedWordShowsNonLetterCharacters(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, "GO-KART")
	game.Start()

	assert.Equal(t, "__-____", game.MaskedWord())
	game.PlayLetter('K')
	game.PlayLetter('O')
	assert.Equal(t, "_O-K___", game.MaskedWord())
}
