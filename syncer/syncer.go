package syncer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/ponterrors"
)

// DefaultConcurrency bounds the number of siblings synced at once.
const DefaultConcurrency = 8

// Report lists the slash-separated paths, relative to the root, touched by a
// sync.
type Report struct {
	Written   []string `json:"written"`
	Unchanged []string `json:"unchanged"`
	Removed   []string `json:"removed"`
}

// Changed reports whether the sync modified anything.
func (r *Report) Changed() bool {
	return len(r.Written) > 0 || len(r.Removed) > 0
}

// Syncer writes generated trees to a file system.
type Syncer struct {
	fs          FS
	logger      parser.Logger
	concurrency int
}

// Option configures a Syncer.
type Option func(*syncConfig) error

type syncConfig struct {
	fs          FS
	logger      parser.Logger
	concurrency int
}

// WithFS sets the target file system. The default is OSFS.
func WithFS(fsys FS) Option {
	return func(cfg *syncConfig) error {
		if fsys == nil {
			return fmt.Errorf("syncer: nil FS")
		}
		cfg.fs = fsys
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l parser.Logger) Option {
	return func(cfg *syncConfig) error {
		cfg.logger = parser.OrNop(l)
		return nil
	}
}

// WithConcurrency bounds the number of siblings synced at once.
func WithConcurrency(n int) Option {
	return func(cfg *syncConfig) error {
		if n < 1 {
			return fmt.Errorf("syncer: concurrency must be positive, got %d", n)
		}
		cfg.concurrency = n
		return nil
	}
}

// New returns a Syncer.
func New(opts ...Option) (*Syncer, error) {
	cfg := &syncConfig{
		fs:          OSFS{},
		logger:      parser.NopLogger{},
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &Syncer{fs: cfg.fs, logger: cfg.logger, concurrency: cfg.concurrency}, nil
}

// run carries the per-sync state shared by all goroutines.
type run struct {
	*Syncer
	mu     sync.Mutex
	report Report
}

func (r *run) record(list *[]string, rel string) {
	r.mu.Lock()
	*list = append(*list, rel)
	r.mu.Unlock()
}

// Sync materializes dir under root.
func (s *Syncer) Sync(ctx context.Context, root string, dir Dir) (*Report, error) {
	r := &run{Syncer: s}

	fresh := false
	info, err := s.fs.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fresh = true
	case err != nil:
		return nil, &ponterrors.SyncError{Path: root, Op: "stat", Cause: err}
	case !info.IsDir():
		if err := s.fs.RemoveAll(root); err != nil {
			return nil, &ponterrors.SyncError{Path: root, Op: "remove", Cause: err}
		}
		r.report.Removed = append(r.report.Removed, ".")
		fresh = true
	}
	if fresh {
		s.logger.Debug("first-time generation", "root", root)
		if err := s.fs.MkdirAll(root); err != nil {
			return nil, &ponterrors.SyncError{Path: root, Op: "mkdir", Cause: err}
		}
	}

	err = r.syncDir(ctx, root, "", dir, fresh)
	slices.Sort(r.report.Written)
	slices.Sort(r.report.Unchanged)
	slices.Sort(r.report.Removed)
	if err != nil {
		return &r.report, err
	}
	s.logger.Info("synced tree",
		"root", root,
		"written", len(r.report.Written),
		"unchanged", len(r.report.Unchanged),
		"removed", len(r.report.Removed))
	return &r.report, nil
}

func (r *run) syncDir(ctx context.Context, dirPath, rel string, dir Dir, fresh bool) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, name := range dir.Names() {
		node := dir[name]
		full := filepath.Join(dirPath, name)
		childRel := path.Join(rel, name)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if sub, ok := node.(Dir); ok {
				return r.syncSubdir(gctx, full, childRel, sub, fresh)
			}
			content, err := Content(node)
			if err != nil {
				return &ponterrors.SyncError{Path: childRel, Op: "render", Cause: err}
			}
			return r.syncFile(full, childRel, content, fresh)
		})
	}
	return g.Wait()
}

func (r *run) syncSubdir(ctx context.Context, full, rel string, dir Dir, fresh bool) error {
	if !fresh {
		info, err := r.fs.Stat(full)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fresh = true
		case err != nil:
			return &ponterrors.SyncError{Path: rel, Op: "stat", Cause: err}
		case !info.IsDir():
			if err := r.fs.RemoveAll(full); err != nil {
				return &ponterrors.SyncError{Path: rel, Op: "remove", Cause: err}
			}
			r.record(&r.report.Removed, rel)
			fresh = true
		}
	}
	if fresh {
		if err := r.fs.MkdirAll(full); err != nil {
			return &ponterrors.SyncError{Path: rel, Op: "mkdir", Cause: err}
		}
	}
	return r.syncDir(ctx, full, rel, dir, fresh)
}

func (r *run) syncFile(full, rel, content string, fresh bool) error {
	if !fresh {
		info, err := r.fs.Stat(full)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return &ponterrors.SyncError{Path: rel, Op: "stat", Cause: err}
		case info.IsDir():
			if err := r.fs.RemoveAll(full); err != nil {
				return &ponterrors.SyncError{Path: rel, Op: "remove", Cause: err}
			}
			r.record(&r.report.Removed, rel)
		default:
			current, err := r.fs.ReadFile(full)
			if err != nil {
				return &ponterrors.SyncError{Path: rel, Op: "read", Cause: err}
			}
			if string(current) == content {
				r.record(&r.report.Unchanged, rel)
				return nil
			}
		}
	}
	if err := r.fs.WriteFile(full, []byte(content)); err != nil {
		return &ponterrors.SyncError{Path: rel, Op: "write", Cause: err}
	}
	r.logger.Debug("wrote file", "path", rel)
	r.record(&r.report.Written, rel)
	return nil
}
