package state

import (
	"errors"
	"sync"
)

// ErrNoPages is returned when a book is created without any leaves.
var ErrNoPages = errors.New("page count must be at least 1")

// Snapshot represents the authoritative book position at a point in time.
type Snapshot struct {
	PageCount  int
	Current    int
	Locked     bool
	Transition uint64 // id of the in-flight transition, zero when idle
}

// CoverOpen reports whether the book is open, i.e. not at either closed endpoint.
func (s Snapshot) CoverOpen() bool {
	return s.Current > 0 && s.Current < s.PageCount
}

// AtStart returns true when the book is closed on its front cover.
func (s Snapshot) AtStart() bool {
	return s.Current <= 0
}

// AtEnd returns true when the book is closed on its back cover.
func (s Snapshot) AtEnd() bool {
	return s.Current >= s.PageCount
}

// CanAdvance reports whether an advance would currently be accepted.
func (s Snapshot) CanAdvance() bool {
	return !s.Locked && !s.AtEnd()
}

// CanRetreat reports whether a retreat would currently be accepted.
func (s Snapshot) CanRetreat() bool {
	return !s.Locked && !s.AtStart()
}

// View is the read-only slice of the store handed to input and rendering code.
type View interface {
	Snapshot() Snapshot
}

// Store owns the book state and serializes transitions.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

var _ View = (*Store)(nil)

// NewStore creates a store for a book with pageCount leaves, closed at the start.
func NewStore(pageCount int) (*Store, error) {
	if pageCount < 1 {
		return nil, ErrNoPages
	}
	return &Store{snapshot: Snapshot{PageCount: pageCount}}, nil
}

// Begin moves the book one position to index to and locks it under the given
// transition id. It reports false, leaving the state untouched, when the book
// is locked or the move is not a single legal step.
func (s *Store) Begin(to int, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Locked || id == 0 {
		return false
	}
	if to < 0 || to > s.snapshot.PageCount {
		return false
	}
	if step := to - s.snapshot.Current; step != 1 && step != -1 {
		return false
	}
	s.snapshot.Current = to
	s.snapshot.Locked = true
	s.snapshot.Transition = id
	return true
}

// Settle releases the lock held by transition id. Stale or unknown ids are ignored.
func (s *Store) Settle(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.snapshot.Locked || s.snapshot.Transition != id {
		return false
	}
	s.snapshot.Locked = false
	s.snapshot.Transition = 0
	return true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
