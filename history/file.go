package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"

	"github.com/Saber-Kurama/learn-pont/internal/fileutil"
)

// defaultOriginDir holds entries of a single-origin project.
const defaultOriginDir = "_default"

// DefaultDir returns the per-user history directory.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, "pont", "history")
}

// FileStore writes each entry as a JSON file under
// <dir>/<origin>/<time>-<id>.json.
type FileStore struct {
	dir string
	// MaxEntries bounds the entries kept per origin; older files are
	// removed after each Save. Zero keeps everything.
	MaxEntries int
}

// NewFileStore returns a store rooted at dir, or at DefaultDir when dir is
// empty.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultDir()
	}
	return &FileStore{dir: dir}
}

// Dir returns the store's root directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) originDir(origin string) string {
	if origin == "" {
		origin = defaultOriginDir
	}
	return filepath.Join(s.dir, origin)
}

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateOrigin(e.Origin); err != nil {
		return err
	}
	dir := s.originDir(e.Origin)
	if err := os.MkdirAll(dir, fileutil.DirMode); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("history: encoding entry: %w", err)
	}
	name := fmt.Sprintf("%020d-%s.json", e.Time.UnixNano(), e.ID)
	if err := os.WriteFile(filepath.Join(dir, name), data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if s.MaxEntries > 0 {
		return s.prune(dir)
	}
	return nil
}

// List implements Store.
func (s *FileStore) List(ctx context.Context, origin string) ([]Entry, error) {
	if err := validateOrigin(origin); err != nil {
		return nil, err
	}
	names, err := entryFiles(s.originDir(origin))
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(filepath.Join(s.originDir(origin), name))
		if err != nil {
			return nil, fmt.Errorf("history: %w", err)
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("history: decoding %s: %w", name, err)
		}
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries, nil
}

func (s *FileStore) prune(dir string) error {
	names, err := entryFiles(dir)
	if err != nil {
		return err
	}
	for len(names) > s.MaxEntries {
		if err := os.Remove(filepath.Join(dir, names[0])); err != nil {
			return fmt.Errorf("history: %w", err)
		}
		names = names[1:]
	}
	return nil
}

// entryFiles lists entry file names in dir, oldest first.
func entryFiles(dir string) ([]string, error) {
	items, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	var names []string
	for _, it := range items {
		if !it.IsDir() && strings.HasSuffix(it.Name(), ".json") {
			names = append(names, it.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}
