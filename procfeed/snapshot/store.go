package snapshot

import (
	"sync"
	"time"

	"github.com/Gthulhu/procfeed/procfeed/domain"
)

// Store owns the current snapshot. Callers only ever see copies.
type Store struct {
	mu        sync.RWMutex
	current   domain.Snapshot
	updatedAt time.Time
}

// NewStore creates a store holding an empty snapshot.
func NewStore() *Store {
	return &Store{current: domain.Snapshot{}}
}

// Read returns a copy of the current snapshot.
func (s *Store) Read() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Replace installs a copy of snap. The copy is taken before the write lock
// so readers are only excluded for the swap itself.
func (s *Store) Replace(snap domain.Snapshot) {
	next := snap.Clone()
	now := time.Now()

	s.mu.Lock()
	s.current = next
	s.updatedAt = now
	s.mu.Unlock()
}

// Len returns the size of the current snapshot without copying it.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.current)
}

// UpdatedAt returns when the snapshot was last replaced, zero if never.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
