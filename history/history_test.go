package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saber-Kurama/learn-pont/standard"
)

func entryAt(origin string, at time.Time, class string) Entry {
	e := NewEntry(uuid.New(), &standard.DataSource{
		Name:        origin,
		BaseClasses: []*standard.BaseClass{{Name: class}},
	})
	e.Time = at
	return e
}

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, entryAt("alpha", base.Add(time.Minute), "Second")))
	require.NoError(t, s.Save(ctx, entryAt("alpha", base, "First")))
	require.NoError(t, s.Save(ctx, entryAt("", base, "Single")))

	entries, err := s.List(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Snapshot.BaseClasses[0].Name)
	assert.Equal(t, "Second", entries[1].Snapshot.BaseClasses[0].Name)

	latest, ok, err := Latest(ctx, s, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Single", latest.Snapshot.BaseClasses[0].Name)

	_, ok, err = Latest(ctx, s, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Error(t, s.Save(ctx, entryAt("../etc", base, "X")))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, &MemoryStore{})
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)
	assert.Equal(t, dir, s.Dir())
	testStore(t, s)

	files, err := os.ReadDir(filepath.Join(dir, defaultOriginDir))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFileStorePrunes(t *testing.T) {
	s := NewFileStore(t.TempDir())
	s.MaxEntries = 2
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"A", "B", "C"} {
		require.NoError(t, s.Save(ctx, entryAt("o", base.Add(time.Duration(i)*time.Second), name)))
	}

	entries, err := s.List(ctx, "o")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "B", entries[0].Snapshot.BaseClasses[0].Name)
}

func TestDefaultDir(t *testing.T) {
	assert.Equal(t, "history", filepath.Base(DefaultDir()))
	assert.Equal(t, DefaultDir(), NewFileStore("").Dir())
}
