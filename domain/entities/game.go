package entities

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/juliencampergue/Hangman/domain"
	"github.com/juliencampergue/Hangman/events"
)

// GameState represents the lifecycle state of a game session
type GameState string

const (
	GameStateNotStarted  GameState = "NOT_STARTED"
	GameStatePlaying     GameState = "PLAYING"
	GameStateOverSuccess GameState = "OVER_SUCCESS"
	GameStateOverFailure GameState = "OVER_FAILURE"
)

// IsOver reports whether the state is terminal. Terminal states are
// absorbing; no transition leaves them.
func (s GameState) IsOver() bool {
	return s == GameStateOverSuccess || s == GameStateOverFailure
}

// InvalidPlayTime is returned by PlayTime for a game that was never started.
const InvalidPlayTime = time.Duration(-1)

// Game is a single in-memory play-through attempt against one word. It is
// mutated exclusively through Start and PlayLetter and becomes immutable once
// a terminal state is reached. Score, state and played letters are each
// exposed as replay-latest observables so consumers render incrementally
// without polling. Observable handlers run while the game's lock is held and
// must not call back into the game.
type Game struct {
	word     *Word
	minScore int
	maxScore int

	mu        sync.Mutex
	startTime time.Time
	endTime   time.Time
	played    []Letter

	score   *events.Observable[int]
	state   *events.Observable[GameState]
	letters *events.Observable[[]Letter]
}

// NewGame creates a new game for the given word with validation
func NewGame(word *Word, minScore, maxScore int) (*Game, error) {
	if word == nil {
		return nil, fmt.Errorf("word cannot be nil")
	}
	if minScore < 0 {
		return nil, fmt.Errorf("minScore must be >= 0, got %d", minScore)
	}
	if maxScore <= minScore {
		return nil, fmt.Errorf("maxScore must be greater than minScore, got %d <= %d", maxScore, minScore)
	}

	return &Game{
		word:     word,
		minScore: minScore,
		maxScore: maxScore,
		score:    events.NewObservable(minScore),
		state:    events.NewObservable(GameStateNotStarted),
		letters:  events.NewObservable([]Letter{}),
	}, nil
}

// Word returns the word this game is played against.
func (g *Game) Word() *Word {
	return g.word
}

// MaxScore returns the score at which the game is lost.
func (g *Game) MaxScore() int {
	return g.maxScore
}

// Score is the observable current score.
func (g *Game) Score() *events.Observable[int] {
	return g.score
}

// State is the observable game state.
func (g *Game) State() *events.Observable[GameState] {
	return g.state
}

// PlayedLetters is the observable ordered sequence of played letters.
func (g *Game) PlayedLetters() *events.Observable[[]Letter] {
	return g.letters
}

// Start transitions the game from NOT_STARTED to PLAYING and records the
// start time. Only the first call has effect; subsequent calls return false
// and leave state and timing untouched.
func (g *Game) Start() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state.Get() != GameStateNotStarted {
		return false
	}

	g.startTime = time.Now()
	g.state.Set(GameStatePlaying)
	return true
}

// PlayLetter plays a single character against the secret word. It returns
// domain.ErrGameNotStarted before Start and domain.ErrGameAlreadyEnded once
// the game is over. Characters outside A-Z (after uppercasing) and letters
// already played are rejected with (false, nil) and cause no state change.
// Accepted letters return (true, nil) whether good or bad.
func (g *Game) PlayLetter(raw rune) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch state := g.state.Get(); {
	case state == GameStateNotStarted:
		return false, domain.ErrGameNotStarted
	case state.IsOver():
		return false, domain.ErrGameAlreadyEnded
	}

	letter, ok := NormalizeLetter(raw)
	if !ok {
		return false, nil
	}
	for _, played := range g.played {
		if played.Letter == letter {
			return false, nil
		}
	}

	good := g.word.Contains(letter)
	g.played = append(g.played, Letter{Letter: letter, GoodLetter: good})

	// Publish the whole transition before returning so observers see the
	// letter, the score and a possible terminal state as one step.
	g.letters.Set(g.playedCopy())

	if good {
		if g.goodCount() == g.word.DistinctLetters() {
			g.endTime = time.Now()
			g.state.Set(GameStateOverSuccess)
		}
	} else {
		score := g.score.Get() + 1
		g.score.Set(score)
		if score >= g.maxScore {
			g.endTime = time.Now()
			g.state.Set(GameStateOverFailure)
		}
	}

	return true, nil
}

// PlayTime returns the elapsed play duration: time since start while playing,
// the frozen duration once the game is over, or InvalidPlayTime if the game
// was never started.
func (g *Game) PlayTime() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playTime()
}

// Detail produces an immutable snapshot of the game, valid at any point of
// its lifecycle. The snapshot carries the unsaved sentinel id until it has
// actually been persisted.
func (g *Game) Detail() *GameDetail {
	g.mu.Lock()
	defer g.mu.Unlock()

	duration := g.playTime()
	if duration < 0 {
		duration = 0
	}

	state := g.state.Get()
	return &GameDetail{
		ID:            UnsavedGameID,
		Date:          g.word.Date,
		Word:          g.word,
		Result:        state == GameStateOverSuccess,
		Played:        state.IsOver(),
		PlayedLetters: g.playedCopy(),
		PlayDuration:  duration,
	}
}

// MaskedWord returns the secret text with letters not yet guessed replaced by
// underscores. Non-playable characters render literally since no guess can
// ever reveal them. Case follows the secret text.
func (g *Game) MaskedWord() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	guessed := make(map[rune]struct{})
	for _, played := range g.played {
		if played.GoodLetter {
			guessed[played.Letter] = struct{}{}
		}
	}

	var b strings.Builder
	for _, r := range g.word.Word {
		normalized, ok := NormalizeLetter(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		if _, guessedIt := guessed[normalized]; guessedIt {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func (g *Game) playTime() time.Duration {
	switch state := g.state.Get(); {
	case state == GameStateNotStarted:
		return InvalidPlayTime
	case state.IsOver():
		return g.endTime.Sub(g.startTime)
	default:
		return time.Since(g.startTime)
	}
}

func (g *Game) playedCopy() []Letter {
	letters := make([]Letter, len(g.played))
	copy(letters, g.played)
	return letters
}

func (g *Game) goodCount() int {
	count := 0
	for _, played := range g.played {
		if played.GoodLetter {
			count++
		}
	}
	return count
}
