package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_TypedSubscription(t *testing.T) {
	bus := NewBus()

	var received []*Event
	bus.Subscribe(OfferEvaluated, func(e *Event) { received = append(received, e) })

	bus.Publish(&OfferEvaluatedData{UUID: "rec-1", Verdict: "accept"})
	bus.Publish(&LedgerRolledOverData{Day: "2026-03-15"})

	require.Len(t, received, 1)
	assert.Equal(t, OfferEvaluated, received[0].Type)
	assert.False(t, received[0].Timestamp.IsZero())

	data, ok := received[0].Data.(*OfferEvaluatedData)
	require.True(t, ok)
	assert.Equal(t, "rec-1", data.UUID)
}

func TestSubscribeAll(t *testing.T) {
	bus := NewBus()

	var types []EventType
	bus.SubscribeAll(func(e *Event) { types = append(types, e.Type) })

	bus.Publish(&OfferEvaluatedData{})
	bus.Publish(&LedgerUpdatedData{})
	bus.Publish(&LedgerRolledOverData{})

	assert.Equal(t, []EventType{OfferEvaluated, LedgerUpdated, LedgerRolledOver}, types)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()

	count := 0
	unsubscribe := bus.SubscribeAll(func(e *Event) { count++ })

	bus.Publish(&OfferEvaluatedData{})
	unsubscribe()
	bus.Publish(&OfferEvaluatedData{})

	assert.Equal(t, 1, count)

	// Unsubscribing twice is harmless.
	unsubscribe()
}

func TestPublish_NoSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(&LedgerUpdatedData{Day: "2026-03-15"})
	})
}

func TestMultipleSubscribers(t *testing.T) {
	bus := NewBus()

	typed := 0
	all := 0
	bus.Subscribe(LedgerUpdated, func(e *Event) { typed++ })
	bus.SubscribeAll(func(e *Event) { all++ })

	bus.Publish(&LedgerUpdatedData{})
	bus.Publish(&OfferEvaluatedData{})

	assert.Equal(t, 1, typed)
	assert.Equal(t, 2, all)
}
