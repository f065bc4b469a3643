package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type note struct {
	ID        int            `json:"id"`
	Text      string         `json:"text"`
	Tags      map[string]int `json:"tags"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (n *note) GetID() int   { return n.ID }
func (n *note) SetID(id int) { n.ID = id }

// setupTestCollection creates a notes collection stored in a temporary directory
func setupTestCollection(t *testing.T) (*Collection[note, *note], string) {
	t.Helper()
	dir := t.TempDir()

	backend, err := NewFileBackend(dir)
	require.NoError(t, err)

	store := New(backend, zap.NewNop())
	return NewCollection[note](store, "notes", "notes.json"), dir
}

func readDocument(t *testing.T, path string) map[string]json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestCollection_Create(t *testing.T) {
	coll, dir := setupTestCollection(t)
	ctx := context.Background()

	for i, text := range []string{"first", "second", "third"} {
		created, err := coll.Create(ctx, note{Text: text})
		require.NoError(t, err)
		assert.Equal(t, i+1, created.ID)
		assert.Equal(t, text, created.Text)
	}

	doc := readDocument(t, filepath.Join(dir, "notes.json"))
	assert.JSONEq(t, "3", string(doc["lastId"]))

	var records []note
	require.NoError(t, json.Unmarshal(doc["notes"], &records))
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[2].Text)
}

func TestCollection_Create_IgnoresCallerID(t *testing.T) {
	coll, _ := setupTestCollection(t)
	ctx := context.Background()

	created, err := coll.Create(ctx, note{ID: 42, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestCollection_CreateUnless(t *testing.T) {
	coll, _ := setupTestCollection(t)
	ctx := context.Background()

	sameText := func(text string) func(*note) bool {
		return func(n *note) bool { return n.Text == text }
	}

	created, err := coll.CreateUnless(ctx, note{Text: "ana"}, sameText("ana"))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	_, err = coll.CreateUnless(ctx, note{Text: "ana"}, sameText("ana"))
	assert.ErrorIs(t, err, ErrConflict)

	created, err = coll.CreateUnless(ctx, note{Text: "ben"}, sameText("ben"))
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	records, err := coll.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCollection_MissingDocument(t *testing.T) {
	coll, dir := setupTestCollection(t)
	ctx := context.Background()

	records, err := coll.List(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	_, err = coll.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "notes.json"))
	assert.True(t, os.IsNotExist(statErr), "reads must not create the document")
}

func TestCollection_List(t *testing.T) {
	coll, _ := setupTestCollection(t)
	ctx := context.Background()

	for _, text := range []string{"apple", "banana", "avocado"} {
		_, err := coll.Create(ctx, note{Text: text})
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		match    func(*note) bool
		expected []string
	}{
		{
			name:     "nil match returns all",
			match:    nil,
			expected: []string{"apple", "banana", "avocado"},
		},
		{
			name:     "filter by prefix",
			match:    func(n *note) bool { return n.Text[0] == 'a' },
			expected: []string{"apple", "avocado"},
		},
		{
			name:     "no matches",
			match:    func(n *note) bool { return false },
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := coll.List(ctx, tt.match)
			require.NoError(t, err)

			texts := make([]string, 0, len(records))
			for _, r := range records {
				texts = append(texts, r.Text)
			}
			assert.Equal(t, tt.expected, texts)
		})
	}
}

func TestCollection_Update(t *testing.T) {
	coll, dir := setupTestCollection(t)
	ctx := context.Background()

	_, err := coll.Create(ctx, note{Text: "one", Tags: map[string]int{"a": 1}})
	require.NoError(t, err)
	_, err = coll.Create(ctx, note{Text: "two"})
	require.NoError(t, err)

	t.Run("replaces fields of the matching record", func(t *testing.T) {
		updated, err := coll.Update(ctx, 1, func(n *note) error {
			n.Tags = map[string]int{"b": 2}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"b": 2}, updated.Tags)

		stored, err := coll.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"b": 2}, stored.Tags)

		other, err := coll.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "two", other.Text)
	})

	t.Run("id cannot be changed", func(t *testing.T) {
		updated, err := coll.Update(ctx, 2, func(n *note) error {
			n.ID = 99
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.ID)
	})

	t.Run("missing id writes nothing", func(t *testing.T) {
		before, err := os.ReadFile(filepath.Join(dir, "notes.json"))
		require.NoError(t, err)

		_, err = coll.Update(ctx, 100, func(n *note) error {
			n.Text = "changed"
			return nil
		})
		assert.ErrorIs(t, err, ErrNotFound)

		after, err := os.ReadFile(filepath.Join(dir, "notes.json"))
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("mutation error aborts the write", func(t *testing.T) {
		mutateErr := errors.New("rejected")
		_, err := coll.Update(ctx, 1, func(n *note) error {
			n.Text = "should not persist"
			return mutateErr
		})
		assert.ErrorIs(t, err, mutateErr)

		stored, err := coll.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "one", stored.Text)
	})
}

func TestCollection_Delete(t *testing.T) {
	coll, dir := setupTestCollection(t)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c"} {
		_, err := coll.Create(ctx, note{Text: text})
		require.NoError(t, err)
	}

	require.NoError(t, coll.Delete(ctx, 2))

	records, err := coll.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 3, records[1].ID)

	doc := readDocument(t, filepath.Join(dir, "notes.json"))
	assert.JSONEq(t, "3", string(doc["lastId"]))

	assert.ErrorIs(t, coll.Delete(ctx, 2), ErrNotFound)

	created, err := coll.Create(ctx, note{Text: "d"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID, "ids of deleted records are not reused")
}

func TestCollection_LastIDNeverBehindRecords(t *testing.T) {
	coll, dir := setupTestCollection(t)
	ctx := context.Background()

	content := `{"notes":[{"id":7,"text":"hand edited"}],"lastId":2}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte(content), 0644))

	created, err := coll.Create(ctx, note{Text: "next"})
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)
}

func TestCollection_DocumentWithoutRecords(t *testing.T) {
	coll, dir := setupTestCollection(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte(`{"lastId":5}`), 0644))

	records, err := coll.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	created, err := coll.Create(ctx, note{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)
}

func TestCollection_CorruptDocument(t *testing.T) {
	coll, dir := setupTestCollection(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte(`{"notes": [`), 0644))

	_, err := coll.List(ctx, nil)
	assert.Error(t, err)

	_, err = coll.Create(ctx, note{Text: "x"})
	assert.Error(t, err)
}

func TestCollection_TimeRoundTrip(t *testing.T) {
	coll, _ := setupTestCollection(t)
	ctx := context.Background()

	now := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	created, err := coll.Create(ctx, note{Text: "x", CreatedAt: now})
	require.NoError(t, err)

	stored, err := coll.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, now.Equal(stored.CreatedAt))
}

func TestCollection_ConcurrentCreates(t *testing.T) {
	coll, _ := setupTestCollection(t)
	ctx := context.Background()

	const workers = 40
	ids := make([]int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := coll.Create(ctx, note{Text: "concurrent"})
			if assert.NoError(t, err) {
				ids[i] = created.ID
			}
		}(i)
	}
	wg.Wait()

	sort.Ints(ids)
	for i, id := range ids {
		assert.Equal(t, i+1, id)
	}

	records, err := coll.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, records, workers)
}

func TestCollection_CanceledContext(t *testing.T) {
	coll, _ := setupTestCollection(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := coll.Create(ctx, note{Text: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileBackend_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.IsType(t, &fileBackend{}, backend)
	assert.Equal(t, dir, backend.(*fileBackend).dir)
	assert.Implements(t, (*Locker)(nil), backend)

	ctx := context.Background()
	require.NoError(t, backend.Write(ctx, "doc.json", []byte(`{"a":1}`)))
	require.NoError(t, backend.Write(ctx, "doc.json", []byte(`{"a":2}`)))

	data, err := backend.Read(ctx, "doc.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must be cleaned up")
	assert.Equal(t, "doc.json", entries[0].Name())

	missing, err := backend.Read(ctx, "missing.json")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCollection_SharedDirectoryAcrossStores(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	// Each store stands in for a separate server process on the same data directory
	open := func() *Collection[note, *note] {
		backend, err := NewFileBackend(dir)
		require.NoError(t, err)
		return NewCollection[note](New(backend, zap.NewNop()), "notes", "notes.json")
	}
	first, second := open(), open()

	const seeded = 5
	for i := 0; i < seeded; i++ {
		_, err := first.Create(ctx, note{Text: "seed", Tags: map[string]int{}})
		require.NoError(t, err)
	}

	const creates = 50
	var wg sync.WaitGroup
	for i := 0; i < creates; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := first.Create(ctx, note{Text: "created"})
			assert.NoError(t, err)
		}()
		go func(i int) {
			defer wg.Done()
			_, err := second.Update(ctx, i%seeded+1, func(n *note) error {
				n.Tags["updates"]++
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := second.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, records, seeded+creates)

	seen := make(map[int]bool, len(records))
	updates := 0
	for _, r := range records {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
		updates += r.Tags["updates"]
	}
	assert.Equal(t, creates, updates)
}

type failingLockBackend struct {
	Backend
	err    error
	writes int
}

func (b *failingLockBackend) Lock(ctx context.Context, name string) (func(), error) {
	return nil, b.err
}

func (b *failingLockBackend) Write(ctx context.Context, name string, data []byte) error {
	b.writes++
	return b.Backend.Write(ctx, name, data)
}

func TestCollection_LockFailure(t *testing.T) {
	files, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	backend := &failingLockBackend{Backend: files, err: errors.New("lock timeout")}
	coll := NewCollection[note](New(backend, zap.NewNop()), "notes", "notes.json")
	ctx := context.Background()

	_, err = coll.Create(ctx, note{Text: "x"})
	assert.ErrorIs(t, err, backend.err)

	_, err = coll.Update(ctx, 1, func(*note) error { return nil })
	assert.ErrorIs(t, err, backend.err)

	assert.ErrorIs(t, coll.Delete(ctx, 1), backend.err)
	assert.Zero(t, backend.writes)

	// Reads do not need the shared lock
	records, err := coll.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
