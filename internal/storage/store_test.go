package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns a fresh instance of every NoteStore implementation.
func backends(t *testing.T) map[string]NoteStore {
	t.Helper()

	db, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, Migrate(db))

	return map[string]NoteStore{
		"memory": NewMemoryStore(),
		"sqlite": NewNoteRepo(db),
	}
}

func TestNoteStore_SaveAssignsSequentialIDs(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			contents := []string{"first note", "", "third with\nnewline", "first note"}

			for i, c := range contents {
				entry, err := store.Save(ctx, c)
				require.NoError(t, err)
				assert.Equal(t, i+1, entry.ID)
				assert.Equal(t, c, entry.Content)
			}

			all, err := store.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, len(contents))
			for i, e := range all {
				assert.Equal(t, i+1, e.ID)
				assert.Equal(t, contents[i], e.Content)
			}
		})
	}
}

func TestNoteStore_SaveThenListIncludesEntryLast(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 0; i < 5; i++ {
				saved, err := store.Save(ctx, fmt.Sprintf("note %d", i))
				require.NoError(t, err)

				all, err := store.ListAll(ctx)
				require.NoError(t, err)
				require.NotEmpty(t, all)
				assert.Equal(t, saved, all[len(all)-1])
			}
		})
	}
}

func TestNoteStore_ListAllEmpty(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			all, err := store.ListAll(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, all)
			assert.Empty(t, all)
		})
	}
}

func TestNoteStore_Get(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := store.Save(ctx, "alpha")
			require.NoError(t, err)
			_, err = store.Save(ctx, "beta")
			require.NoError(t, err)

			got, err := store.Get(ctx, 2)
			require.NoError(t, err)
			assert.Equal(t, NoteEntry{ID: 2, Content: "beta"}, got)

			for _, id := range []int{0, -1, 3} {
				_, err := store.Get(ctx, id)
				assert.ErrorIs(t, err, ErrNotFound, "id %d", id)
			}
		})
	}
}

func TestNoteStore_Count(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			n, err := store.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, n)

			_, err = store.Save(ctx, "x")
			require.NoError(t, err)

			n, err = store.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestNoteStore_ConcurrentSavesKeepIDsUnique(t *testing.T) {
	const writers = 50

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			var wg sync.WaitGroup
			errs := make(chan error, writers)

			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					if _, err := store.Save(ctx, fmt.Sprintf("note %d", i)); err != nil {
						errs <- err
					}
				}(i)
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			all, err := store.ListAll(ctx)
			require.NoError(t, err)
			require.Len(t, all, writers)
			for i, e := range all {
				assert.Equal(t, i+1, e.ID)
			}
		})
	}
}

func TestMemoryStore_ListAllIsSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	_, err := store.Save(ctx, "original")
	require.NoError(t, err)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	all[0].Content = "mutated"

	got, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Content)
}
