package repositories

import (
	"sync"
)

// Store holds the current application state and serializes every update.
// Readers get the latest published Snapshot and never observe partial updates.
type Store struct {
	mu      sync.RWMutex
	current Snapshot
}

func NewStore(initial Snapshot) *Store {
	initial.Version = 0
	return &Store{current: initial}
}

// Snapshot returns the latest published state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Version increases by one with every successful update.
func (s *Store) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Version
}

// Update applies fn to the current snapshot and publishes its result.
// Updates run one at a time in call order; on error nothing is published.
func (s *Store) Update(fn func(Snapshot) (Snapshot, error)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current)
	if err != nil {
		return s.current, err
	}
	next.Version = s.current.Version + 1
	s.current = next
	return next, nil
}
