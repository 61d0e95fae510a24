package domain

import "errors"

// Failure taxonomy for the whole module. These are leaf kinds: callers match
// them with errors.Is and retry where the operation is idempotent (fetch,
// login). Game state errors are programmer errors and should be prevented by
// caller-side state checks rather than caught.
var (
	ErrNetwork               = errors.New("network error")
	ErrInvalidFetchedWord    = errors.New("fetched word is invalid")
	ErrWordFetching          = errors.New("failed to fetch word of the day")
	ErrUnavailableGameDetail = errors.New("game detail unavailable")
	ErrGameNotStarted        = errors.New("game has not been started")
	ErrGameAlreadyEnded      = errors.New("game has already ended")
	ErrSettingsFetching      = errors.New("failed to fetch settings")
	ErrHistoryFetching       = errors.New("failed to fetch played games")
	ErrDetailFetching        = errors.New("failed to fetch game detail")
	ErrUnknown               = errors.New("unknown error")
)
