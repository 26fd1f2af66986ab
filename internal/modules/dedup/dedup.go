// Package dedup suppresses repeated delivery of already-seen observations.
// Only identity-bearing sources (the notification listener) go through it;
// polling sources rely on the decision engine being idempotent instead.
package dedup

import (
	"container/list"
	"sync"
	"time"
)

// Store is a bounded, LRU-evicting seen-set keyed by observation identity.
// Safe for concurrent use; producers run on independent goroutines.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently seen
	now      func() time.Time
}

type entry struct {
	key        string
	observedAt int64
	seenAt     time.Time
}

// NewStore creates a seen-set bounded to capacity identities.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = 512
	}
	return &Store{
		capacity: capacity,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		now:      time.Now,
	}
}

// ShouldProcess reports whether an observation is new. The same identity with
// the same observedAt timestamp is a repeat; a different timestamp is a fresh
// observation of the same identity (the app re-posts notifications).
func (s *Store) ShouldProcess(identityKey string, observedAt int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[identityKey]; ok {
		e := el.Value.(*entry)
		if e.observedAt == observedAt {
			return false
		}
		e.observedAt = observedAt
		e.seenAt = s.now()
		s.order.MoveToFront(el)
		return true
	}

	s.entries[identityKey] = s.order.PushFront(&entry{
		key:        identityKey,
		observedAt: observedAt,
		seenAt:     s.now(),
	})

	for s.order.Len() > s.capacity {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry).key)
	}

	return true
}

// Prune drops entries not seen within maxAge and returns how many were
// removed. Run from the maintenance scheduler.
func (s *Store) Prune(maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	removed := 0

	for el := s.order.Back(); el != nil; {
		e := el.Value.(*entry)
		if e.seenAt.After(cutoff) {
			// Entries are in recency order; everything further forward is newer.
			break
		}
		prev := el.Prev()
		s.order.Remove(el)
		delete(s.entries, e.key)
		removed++
		el = prev
	}

	return removed
}

// Len returns the number of tracked identities.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
