package entities

import "time"

// UnsavedGameID is the id carried by a GameDetail snapshot that has not been
// persisted yet. The store assigns the durable id on save.
const UnsavedGameID int64 = 0

// GameDetail is an immutable snapshot of a game suitable for storage and
// display. The played letters keep their play order through persistence
// round-trips.
type GameDetail struct {
	ID            int64
	Date          int64
	Word          *Word
	Result        bool
	Played        bool
	PlayedLetters []Letter
	PlayDuration  time.Duration
}

// IsSaved reports whether this snapshot has been assigned a durable id.
func (d *GameDetail) IsSaved() bool {
	return d.ID != UnsavedGameID
}

// GameHistoryItem is a read-only projection of a persisted game for list
// display.
type GameHistoryItem struct {
	ID     int64
	Date   int64
	WordID string
	Word   string
	Result bool
	Played bool
}

// GameHistoryPage is one page of played games, newest first.
type GameHistoryPage struct {
	Items      []*GameHistoryItem
	IsLastPage bool
}
