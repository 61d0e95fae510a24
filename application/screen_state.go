package application

import (
	"errors"

	"github.com/juliencampergue/Hangman/domain"
	"github.com/juliencampergue/Hangman/domain/entities"
)

// Screen states are discriminated unions reduced from the loading/error/data
// combinations published by Core. Reducers are pure; presentation layers
// switch exhaustively over the variants.

// GameScreenState is the display state of the game screen.
type GameScreenState interface {
	isGameScreenState()
}

// GameScreenLoading shows progress while the word flow is in flight.
type GameScreenLoading struct{}

// GameScreenError carries the failure; Retryable is true for idempotent
// operations (fetch, login), false where only a dismiss path is safe.
type GameScreenError struct {
	Err       error
	Retryable bool
}

// GameScreenPlaying renders the live game.
type GameScreenPlaying struct {
	Game *entities.Game
}

// GameScreenResult renders the persisted result for today.
type GameScreenResult struct {
	Detail *entities.GameDetail
}

func (GameScreenLoading) isGameScreenState() {}
func (GameScreenError) isGameScreenState()   {}
func (GameScreenPlaying) isGameScreenState() {}
func (GameScreenResult) isGameScreenState()  {}

// ReduceGameScreen maps the session state combination to a single screen
// state. The persisted detail always wins over a live game once present; a
// live game wins over a stale error; errors win over loading.
func ReduceGameScreen(loading bool, err error, game *entities.Game, detail *entities.GameDetail) GameScreenState {
	switch {
	case detail != nil:
		return GameScreenResult{Detail: detail}
	case game != nil:
		return GameScreenPlaying{Game: game}
	case err != nil:
		return GameScreenError{Err: err, Retryable: isRetryable(err)}
	default:
		return GameScreenLoading{}
	}
}

func isRetryable(err error) bool {
	return errors.Is(err, domain.ErrNetwork) || errors.Is(err, domain.ErrWordFetching)
}

// HistoryScreenState is the display state of the played-games list.
type HistoryScreenState interface {
	isHistoryScreenState()
}

// HistoryScreenLoading shows progress for the first page.
type HistoryScreenLoading struct{}

// HistoryScreenError carries the list failure.
type HistoryScreenError struct {
	Err error
}

// HistoryScreenLoaded holds every item loaded so far.
type HistoryScreenLoaded struct {
	Items      []*entities.GameHistoryItem
	IsLastPage bool
}

func (HistoryScreenLoading) isHistoryScreenState() {}
func (HistoryScreenError) isHistoryScreenState()   {}
func (HistoryScreenLoaded) isHistoryScreenState()  {}

// ReduceHistoryScreen folds a freshly fetched page (or its error) into the
// previous screen state, appending to already loaded items.
func ReduceHistoryScreen(prev HistoryScreenState, page *entities.GameHistoryPage, err error) HistoryScreenState {
	if err != nil {
		return HistoryScreenError{Err: err}
	}
	if page == nil {
		return HistoryScreenLoading{}
	}

	loaded, ok := prev.(HistoryScreenLoaded)
	if !ok {
		return HistoryScreenLoaded{Items: page.Items, IsLastPage: page.IsLastPage}
	}

	items := make([]*entities.GameHistoryItem, 0, len(loaded.Items)+len(page.Items))
	items = append(items, loaded.Items...)
	items = append(items, page.Items...)
	return HistoryScreenLoaded{Items: items, IsLastPage: page.IsLastPage}
}

// SettingsScreenState is the display state of the settings screen.
type SettingsScreenState interface {
	isSettingsScreenState()
}

// SettingsScreenLoading shows progress while settings load.
type SettingsScreenLoading struct{}

// SettingsScreenError carries the settings failure.
type SettingsScreenError struct {
	Err error
}

// SettingsScreenLoaded renders the current settings.
type SettingsScreenLoaded struct {
	Settings *entities.Settings
}

func (SettingsScreenLoading) isSettingsScreenState() {}
func (SettingsScreenError) isSettingsScreenState()   {}
func (SettingsScreenLoaded) isSettingsScreenState()  {}

// ReduceSettingsScreen maps the settings load outcome to a screen state.
func ReduceSettingsScreen(settings *entities.Settings, err error) SettingsScreenState {
	switch {
	case err != nil:
		return SettingsScreenError{Err: err}
	case settings != nil:
		return SettingsScreenLoaded{Settings: settings}
	default:
		return SettingsScreenLoading{}
	}
}
