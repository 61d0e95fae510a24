package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/juliencampergue/Hangman/domain"
	"github.com/juliencampergue/Hangman/domain/entities"
	"github.com/juliencampergue/Hangman/domain/interfaces"
	"github.com/juliencampergue/Hangman/events"
)

// historyPageSize is the fixed page size used for the played-games list.
const historyPageSize = 10

// Core is the process-lifetime session orchestrator. It sequences the
// fetch -> lookup -> create-or-resume flow for today's word and exposes the
// reactive session state every screen consumes. Exactly one of CurrentGame
// and TodaysContent is authoritative at a time; once TodaysContent is set it
// stays the display source of truth for the rest of the process life.
type Core struct {
	words    interfaces.WordRepository
	games    interfaces.GameRepository
	settings interfaces.SettingsRepository
	auth     interfaces.AuthRepository
	engine   interfaces.GameEngine
	bus      *events.Bus

	mu sync.Mutex
	// TODO: invalidate the cached word when the date rolls over while the
	// process stays alive (compare word.Date against today on access).
	word           *entities.Word
	cachedSettings *entities.Settings

	currentGame   *events.Observable[*entities.Game]
	todaysContent *events.Observable[*entities.GameDetail]
}

// NewCore creates the session orchestrator. It is constructed once at wiring
// time and shared by reference.
func NewCore(
	words interfaces.WordRepository,
	games interfaces.GameRepository,
	settings interfaces.SettingsRepository,
	auth interfaces.AuthRepository,
	engine interfaces.GameEngine,
	bus *events.Bus,
) *Core {
	return &Core{
		words:         words,
		games:         games,
		settings:      settings,
		auth:          auth,
		engine:        engine,
		bus:           bus,
		currentGame:   events.NewObservable[*entities.Game](nil),
		todaysContent: events.NewObservable[*entities.GameDetail](nil),
	}
}

// CurrentGame is the observable live game for today, nil while none is live.
func (c *Core) CurrentGame() *events.Observable[*entities.Game] {
	return c.currentGame
}

// TodaysContent is the observable persisted result for today, nil until one
// exists. Once set it supersedes CurrentGame for presentation purposes.
func (c *Core) TodaysContent() *events.Observable[*entities.GameDetail] {
	return c.todaysContent
}

// IsLoggedIn is the observable login state.
func (c *Core) IsLoggedIn() *events.Observable[bool] {
	return c.auth.IsLoggedIn()
}

// GetWordOfTheDay fetches today's word once per process and memoizes it on
// success. The first successful fetch also resolves whether today's word
// already has a saved result: if so the saved detail is published as today's
// content, otherwise a live game is obtained from the engine and published as
// the current game.
func (c *Core) GetWordOfTheDay(ctx context.Context) (*entities.Word, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.word != nil {
		return c.word, nil
	}

	word, err := c.words.FetchWordOfToday(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFetchedWord) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrWordFetching, err)
	}

	detail, err := c.games.GetGameContentForWord(ctx, word.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWordFetching, err)
	}

	if detail != nil {
		log.WithField("word_id", word.ID).Debug("Today's word already has a saved result")
		c.todaysContent.Set(detail)
	} else {
		game, err := c.engine.GameForWord(word)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrWordFetching, err)
		}
		c.currentGame.Set(game)
	}

	c.word = word
	c.bus.Emit(ctx, events.WordFetchedEvent{WordID: word.ID, Date: word.Date})

	return word, nil
}

// SaveGame persists a finished game through the repository's save-then-verify
// path, then republishes the verified detail as today's content. The live
// game object is not destroyed; it simply stops being the presentation
// source of truth.
func (c *Core) SaveGame(ctx context.Context, detail *entities.GameDetail) (*entities.GameDetail, error) {
	saved, err := c.games.SaveGame(ctx, detail)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailableGameDetail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	c.todaysContent.Set(saved)
	c.bus.Emit(ctx, events.GameSavedEvent{
		GameID: saved.ID,
		WordID: saved.Word.ID,
		Result: saved.Result,
	})

	log.WithFields(log.Fields{
		"game_id": saved.ID,
		"word_id": saved.Word.ID,
		"result":  saved.Result,
	}).Info("Game saved")

	return saved, nil
}

// GetPlayedGames returns one fixed-size page of played games. from <= 0 means
// the most recent page.
func (c *Core) GetPlayedGames(ctx context.Context, from int64) (*entities.GameHistoryPage, error) {
	page, err := c.games.GetPlayedGames(ctx, from, historyPageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrHistoryFetching, err)
	}
	return page, nil
}

// GetGameContent retrieves a persisted game by id. A missing id is reported
// as domain.ErrUnavailableGameDetail.
func (c *Core) GetGameContent(ctx context.Context, id int64) (*entities.GameDetail, error) {
	detail, err := c.games.GetGameContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDetailFetching, err)
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: no game with id %d", domain.ErrUnavailableGameDetail, id)
	}
	return detail, nil
}

// Login authenticates against the backend.
func (c *Core) Login(ctx context.Context) (bool, error) {
	return c.auth.Login(ctx)
}

// GetSettings reads the settings once and memoizes them; SaveSettings keeps
// the cache in sync so reads never re-query the store.
func (c *Core) GetSettings(ctx context.Context) (*entities.Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cachedSettings != nil {
		return c.cachedSettings, nil
	}

	settings, err := c.settings.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSettingsFetching, err)
	}

	c.cachedSettings = settings
	return settings, nil
}

// SaveSettings writes the settings through to the store and updates the
// memoized copy.
func (c *Core) SaveSettings(ctx context.Context, settings *entities.Settings) error {
	if err := c.settings.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSettingsFetching, err)
	}

	c.mu.Lock()
	c.cachedSettings = settings
	c.mu.Unlock()

	c.bus.Emit(ctx, events.SettingsChangedEvent{DisplayTimer: settings.DisplayTimer})
	return nil
}
