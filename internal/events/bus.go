// Package events provides the in-process pub/sub bus that connects the
// ingest pipeline to the SSE stream and the maintenance jobs.
package events

import (
	"sync"
	"time"
)

// EventType identifies a class of system event.
type EventType string

const (
	// OfferEvaluated fires after the decision engine produces a verdict.
	OfferEvaluated EventType = "offer_evaluated"
	// LedgerUpdated fires after any ledger counter changes.
	LedgerUpdated EventType = "ledger_updated"
	// LedgerRolledOver fires when the midnight job touches a fresh day.
	LedgerRolledOver EventType = "ledger_rolled_over"
)

// Event is one published occurrence with its typed payload.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      EventData `json:"data"`
}

// Handler processes a published event. Handlers must not block: publishing
// happens on the ingest path.
type Handler func(*Event)

// Bus is a minimal synchronous pub/sub bus. Subscribing with an empty
// EventType receives every event.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[EventType]map[int]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[EventType]map[int]Handler)}
}

// Subscribe registers a handler for one event type and returns a function
// that removes the subscription (SSE clients come and go).
func (b *Bus) Subscribe(t EventType, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[t] == nil {
		b.subs[t] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[t][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[t], id)
	}
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(h Handler) (unsubscribe func()) {
	return b.Subscribe("", h)
}

// Publish dispatches data to all matching handlers on the caller's
// goroutine.
func (b *Bus) Publish(data EventData) {
	event := &Event{
		Type:      data.EventType(),
		Timestamp: time.Now(),
		Data:      data,
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[event.Type])+len(b.subs[""]))
	for _, h := range b.subs[event.Type] {
		handlers = append(handlers, h)
	}
	for _, h := range b.subs[""] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
