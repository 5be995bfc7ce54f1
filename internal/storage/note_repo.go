package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// NoteRepo stores notes in SQLite.
// It implements the NoteStore interface.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// Save counts existing rows and inserts the new note with id = count + 1,
// both inside one transaction.
func (r *NoteRepo) Save(ctx context.Context, content string) (NoteEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return NoteEntry{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&count); err != nil {
		return NoteEntry{}, fmt.Errorf("failed to count notes: %w", err)
	}

	entry := NoteEntry{ID: count + 1, Content: content}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO notes (id, content) VALUES (?, ?)",
		entry.ID, entry.Content,
	); err != nil {
		return NoteEntry{}, fmt.Errorf("failed to insert note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return NoteEntry{}, fmt.Errorf("failed to commit note: %w", err)
	}
	return entry, nil
}

// ListAll returns all notes ordered by id.
func (r *NoteRepo) ListAll(ctx context.Context) ([]NoteEntry, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, content FROM notes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	entries := make([]NoteEntry, 0)
	for rows.Next() {
		var e NoteEntry
		if err := rows.Scan(&e.ID, &e.Content); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return entries, nil
}

// Get returns the note with the given id.
// Returns ErrNotFound if no such note exists.
func (r *NoteRepo) Get(ctx context.Context, id int) (NoteEntry, error) {
	var e NoteEntry
	err := r.db.QueryRowContext(ctx,
		"SELECT id, content FROM notes WHERE id = ?", id,
	).Scan(&e.ID, &e.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return NoteEntry{}, ErrNotFound
	}
	if err != nil {
		return NoteEntry{}, fmt.Errorf("failed to query note: %w", err)
	}
	return e, nil
}

// Count returns the number of stored notes.
func (r *NoteRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}
