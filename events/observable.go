package events

import (
	"sort"
	"sync"
)

// Observable is a publish/subscribe value container with last-value replay.
// New subscribers immediately receive the latest value, then every subsequent
// Set in the order the values were produced. The producer's lock is held while
// handlers run, so values are never delivered out of order; handlers must not
// call back into the Observable or its producer.
type Observable[T any] struct {
	mu       sync.Mutex
	value    T
	nextID   int
	handlers map[int]func(T)
}

// NewObservable creates an Observable holding the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:    initial,
		handlers: make(map[int]func(T)),
	}
}

// Get returns the latest published value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set publishes a new value to all subscribers.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.value = value
	ids := make([]int, 0, len(o.handlers))
	for id := range o.handlers {
		ids = append(ids, id)
	}
	// Stable delivery order across subscribers.
	sort.Ints(ids)
	for _, id := range ids {
		o.handlers[id](value)
	}
}

// Subscribe registers a handler and replays the latest value to it
// immediately. The returned function removes the subscription.
func (o *Observable[T]) Subscribe(handler func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++
	o.handlers[id] = handler
	handler(o.value)

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.handlers, id)
	}
}
