// Package history records snapshots of generated models so earlier runs can
// be listed and compared.
package history

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Saber-Kurama/learn-pont/standard"
)

// Entry is one recorded snapshot of an origin.
type Entry struct {
	ID       uuid.UUID            `json:"id"`
	RunID    uuid.UUID            `json:"runId"`
	Origin   string               `json:"origin"`
	Time     time.Time            `json:"time"`
	Snapshot *standard.DataSource `json:"snapshot"`
}

// NewEntry returns an entry for snapshot stamped with a fresh ID and the
// current UTC time.
func NewEntry(runID uuid.UUID, snapshot *standard.DataSource) Entry {
	return Entry{
		ID:       uuid.New(),
		RunID:    runID,
		Origin:   snapshot.Name,
		Time:     time.Now().UTC(),
		Snapshot: snapshot,
	}
}

// Store persists entries. List returns the entries of one origin, oldest
// first.
type Store interface {
	Save(ctx context.Context, e Entry) error
	List(ctx context.Context, origin string) ([]Entry, error)
}

// Latest returns the newest entry of origin, or false when none exist.
func Latest(ctx context.Context, s Store, origin string) (Entry, bool, error) {
	entries, err := s.List(ctx, origin)
	if err != nil || len(entries) == 0 {
		return Entry{}, false, err
	}
	return entries[len(entries)-1], true, nil
}

func validateOrigin(origin string) error {
	if strings.ContainsAny(origin, `/\`) || origin == "." || origin == ".." {
		return fmt.Errorf("history: invalid origin name %q", origin)
	}
	return nil
}

func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Time.Compare(b.Time)
	})
}

// MemoryStore keeps entries in memory. The zero value is ready to use.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]Entry
}

// Save implements Store.
func (m *MemoryStore) Save(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOrigin(e.Origin); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[string][]Entry)
	}
	m.entries[e.Origin] = append(m.entries[e.Origin], e)
	sortEntries(m.entries[e.Origin])
	return nil
}

// List implements Store.
func (m *MemoryStore) List(ctx context.Context, origin string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.entries[origin]), nil
}
