package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_store.go -package=mocks vortex-api/internal/storage NoteStore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// NoteStore is an append-only log of notes.
// Implementations assign IDs as count of existing entries + 1.
type NoteStore interface {
	// Save appends content as a new entry and returns it.
	Save(ctx context.Context, content string) (NoteEntry, error)
	// ListAll returns every entry in insertion order.
	ListAll(ctx context.Context) ([]NoteEntry, error)
	// Get returns the entry with the given ID, or ErrNotFound.
	Get(ctx context.Context, id int) (NoteEntry, error)
	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
}
