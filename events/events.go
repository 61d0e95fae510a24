package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeWordFetched     EventType = "word_fetched"
	EventTypeGameCreated     EventType = "game_created"
	EventTypeGameSaved       EventType = "game_saved"
	EventTypeSettingsChanged EventType = "settings_changed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// WordFetchedEvent is emitted once per process when the word of the day has
// been fetched and validated.
type WordFetchedEvent struct {
	WordID string
	Date   int64
}

func (e WordFetchedEvent) Type() EventType {
	return EventTypeWordFetched
}

// GameCreatedEvent is emitted when the engine constructs a new game for a word.
type GameCreatedEvent struct {
	WordID   string
	MinScore int
	MaxScore int
}

func (e GameCreatedEvent) Type() EventType {
	return EventTypeGameCreated
}

// GameSavedEvent is emitted after a finished game has been persisted and the
// saved record verified.
type GameSavedEvent struct {
	GameID int64
	WordID string
	Result bool
}

func (e GameSavedEvent) Type() EventType {
	return EventTypeGameSaved
}

// SettingsChangedEvent is emitted when settings are written through.
type SettingsChangedEvent struct {
	DisplayTimer bool
}

func (e SettingsChangedEvent) Type() EventType {
	return EventTypeSettingsChanged
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers. Handlers run
// asynchronously so emitters never block on observers.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h Handler) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType": event.Type(),
						"panic":     r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler)
	}
}
