package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps notes in a slice guarded by a mutex.
// It implements the NoteStore interface and never returns an error
// other than ErrNotFound.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []NoteEntry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends a new entry. The ID is computed under the write lock so
// concurrent saves cannot observe the same length.
func (s *MemoryStore) Save(_ context.Context, content string) (NoteEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := NoteEntry{ID: len(s.entries) + 1, Content: content}
	s.entries = append(s.entries, entry)
	return entry, nil
}

// ListAll returns a snapshot of all entries in insertion order.
func (s *MemoryStore) ListAll(_ context.Context) ([]NoteEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]NoteEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Get returns the entry with the given ID.
func (s *MemoryStore) Get(_ context.Context, id int) (NoteEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 1 || id > len(s.entries) {
		return NoteEntry{}, ErrNotFound
	}
	return s.entries[id-1], nil
}

// Count returns the number of entries.
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
