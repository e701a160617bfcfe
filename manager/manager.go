package manager

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Saber-Kurama/learn-pont/compiler"
	"github.com/Saber-Kurama/learn-pont/config"
	"github.com/Saber-Kurama/learn-pont/differ"
	"github.com/Saber-Kurama/learn-pont/fetcher"
	"github.com/Saber-Kurama/learn-pont/generator"
	"github.com/Saber-Kurama/learn-pont/history"
	"github.com/Saber-Kurama/learn-pont/internal/metrics"
	"github.com/Saber-Kurama/learn-pont/internal/naming"
	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/standard"
	"github.com/Saber-Kurama/learn-pont/syncer"
	"github.com/Saber-Kurama/learn-pont/transformer"
)

// Failure stages reported to metrics.
const (
	stageFetch     = "fetch"
	stageParse     = "parse"
	stageTransform = "transform"
	stageGenerate  = "generate"
	stageSync      = "sync"
)

// Manager drives fetch, transform, generation and sync for one
// configuration. It is safe for sequential use; concurrent Generate calls
// against the same output directory must be serialized by the caller.
type Manager struct {
	cfg       *config.Config
	fetcher   fetcher.Fetcher
	syncer    *syncer.Syncer
	history   history.Store
	formatter generator.Formatter
	template  *generator.Template
	interval  time.Duration
	compiler  *compiler.Compiler
	logger    parser.Logger
}

// Option configures a Manager.
type Option func(*managerConfig) error

type managerConfig struct {
	fetcher   fetcher.Fetcher
	syncer    *syncer.Syncer
	history   history.Store
	formatter generator.Formatter
	template  *generator.Template
	interval  time.Duration
	logger    parser.Logger
}

// WithFetcher replaces the default HTTP/file fetcher.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(cfg *managerConfig) error {
		if f == nil {
			return errors.New("fetcher is nil")
		}
		cfg.fetcher = f
		return nil
	}
}

// WithSyncer replaces the default OS-backed syncer.
func WithSyncer(s *syncer.Syncer) Option {
	return func(cfg *managerConfig) error {
		if s == nil {
			return errors.New("syncer is nil")
		}
		cfg.syncer = s
		return nil
	}
}

// WithHistory records a snapshot of every changed model in s.
func WithHistory(s history.Store) Option {
	return func(cfg *managerConfig) error {
		cfg.history = s
		return nil
	}
}

// WithFormatter sets the formatter applied to generated code units.
func WithFormatter(f generator.Formatter) Option {
	return func(cfg *managerConfig) error {
		if f == nil {
			return errors.New("formatter is nil")
		}
		cfg.formatter = f
		return nil
	}
}

// WithTemplate renders with t instead of the template named by the
// configuration's templateType.
func WithTemplate(t generator.Template) Option {
	return func(cfg *managerConfig) error {
		cfg.template = &t
		return nil
	}
}

// WithPollingInterval overrides the configuration's pollingTime for Watch.
func WithPollingInterval(d time.Duration) Option {
	return func(cfg *managerConfig) error {
		if d <= 0 {
			return fmt.Errorf("polling interval must be positive, got %s", d)
		}
		cfg.interval = d
		return nil
	}
}

// WithLogger sets the logger passed down to every stage.
func WithLogger(l parser.Logger) Option {
	return func(cfg *managerConfig) error {
		cfg.logger = l
		return nil
	}
}

// New returns a Manager for cfg.
func New(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("manager: config is nil")
	}
	mc := &managerConfig{}
	for _, opt := range opts {
		if err := opt(mc); err != nil {
			return nil, fmt.Errorf("manager: invalid options: %w", err)
		}
	}
	logger := parser.OrNop(mc.logger)

	if mc.fetcher == nil {
		baseDir := ""
		if cfg.Path != "" {
			baseDir = filepath.Dir(cfg.Path)
		}
		f, err := fetcher.New(baseDir, fetcher.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("manager: %w", err)
		}
		mc.fetcher = f
	}
	if mc.syncer == nil {
		s, err := syncer.New(syncer.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("manager: %w", err)
		}
		mc.syncer = s
	}
	if mc.interval == 0 {
		mc.interval = cfg.PollingInterval()
	}

	return &Manager{
		cfg:       cfg,
		fetcher:   mc.fetcher,
		syncer:    mc.syncer,
		history:   mc.history,
		formatter: mc.formatter,
		template:  mc.template,
		interval:  mc.interval,
		compiler:  compiler.New(0),
		logger:    logger,
	}, nil
}

// Config returns the manager's configuration.
func (m *Manager) Config() *config.Config { return m.cfg }

// OutDir returns the resolved output directory.
func (m *Manager) OutDir() string { return m.cfg.ResolvedOutDir() }

// originName returns the identifier a configured origin is generated
// under. Single-origin setups carry no name.
func (m *Manager) originName(ds config.DataSource) string {
	if !m.cfg.MultipleOrigins() {
		return ""
	}
	return naming.ToIdentifier(naming.CamelDashes(ds.Name))
}

// Load fetches, parses and transforms every origin. Origins are processed
// concurrently; the first failure cancels the rest and no partial result is
// returned.
func (m *Manager) Load(ctx context.Context) ([]*standard.DataSource, error) {
	origins := m.cfg.DataSources()
	sources := make([]*standard.DataSource, len(origins))

	g, ctx := errgroup.WithContext(ctx)
	for i, origin := range origins {
		g.Go(func() error {
			ds, err := m.loadOrigin(ctx, origin)
			if err != nil {
				return fmt.Errorf("manager: origin %q: %w", origin.Name, err)
			}
			sources[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func (m *Manager) loadOrigin(ctx context.Context, origin config.DataSource) (*standard.DataSource, error) {
	name := m.originName(origin)
	logger := m.logger.With("origin", origin.Name)

	start := time.Now()
	data, err := m.fetcher.Fetch(ctx, origin.OriginURL)
	metrics.FetchDuration.WithLabelValues(origin.Name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Failures.WithLabelValues(stageFetch).Inc()
		return nil, err
	}
	logger.Debug("fetched document", "url", origin.OriginURL, "bytes", len(data))

	parseOpts := []parser.Option{parser.WithSourceName(origin.OriginURL), parser.WithLogger(logger)}
	if d := origin.Dialect(); d != nil {
		parseOpts = append(parseOpts, parser.WithDialect(*d))
	}
	doc, err := parser.Parse(data, parseOpts...)
	if err != nil {
		metrics.Failures.WithLabelValues(stageParse).Inc()
		return nil, err
	}

	ds, err := transformer.Transform(doc,
		transformer.WithOriginName(name),
		transformer.WithUsingOperationID(origin.UsingOperationID),
		transformer.WithCompiler(m.compiler),
		transformer.WithLogger(logger),
	)
	if err != nil {
		metrics.Failures.WithLabelValues(stageTransform).Inc()
		return nil, err
	}
	return ds, nil
}

// Result describes one Generate run.
type Result struct {
	RunID   uuid.UUID
	Sources []*standard.DataSource
	Report  *syncer.Report
}

// Generate loads every origin, renders the code tree and syncs it to the
// output directory.
func (m *Manager) Generate(ctx context.Context) (res *Result, err error) {
	start := time.Now()
	runID := uuid.New()
	logger := m.logger.With("run", runID.String())
	defer func() {
		written := 0
		if res != nil {
			written = len(res.Report.Written)
		}
		metrics.ObserveRun(start, written, err)
	}()

	sources, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	gen, err := m.newGenerator(sources, logger)
	if err != nil {
		metrics.Failures.WithLabelValues(stageGenerate).Inc()
		return nil, err
	}
	report, err := m.syncer.Sync(ctx, m.OutDir(), gen.Files())
	if err != nil {
		metrics.Failures.WithLabelValues(stageSync).Inc()
		return nil, fmt.Errorf("manager: %w", err)
	}
	logger.Info("generated",
		"outDir", m.OutDir(),
		"written", len(report.Written),
		"unchanged", len(report.Unchanged),
		"removed", len(report.Removed),
		"elapsed", time.Since(start).String(),
	)

	if m.history != nil && report.Changed() {
		for _, ds := range sources {
			if err := m.history.Save(ctx, history.NewEntry(runID, ds)); err != nil {
				logger.Warn("cannot record history", "origin", ds.Name, "error", err)
			}
		}
	}
	return &Result{RunID: runID, Sources: sources, Report: report}, nil
}

func (m *Manager) newGenerator(sources []*standard.DataSource, logger parser.Logger) (*generator.Generator, error) {
	opts := []generator.Option{
		generator.WithMultipleOrigins(m.cfg.MultipleOrigins()),
		generator.WithSurrounding(generator.Surrounding(m.cfg.Surrounding)),
		generator.WithLogger(logger),
	}
	if m.template != nil {
		opts = append(opts, generator.WithCustomTemplate(*m.template))
	} else {
		opts = append(opts, generator.WithTemplate(m.cfg.TemplateType))
	}
	if m.formatter != nil {
		opts = append(opts, generator.WithFormatter(m.formatter))
	}
	return generator.New(sources, opts...)
}

// Files loads every origin and returns the rendered tree without touching
// the output directory.
func (m *Manager) Files(ctx context.Context) (syncer.Dir, error) {
	sources, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	gen, err := m.newGenerator(sources, m.logger)
	if err != nil {
		return nil, err
	}
	return gen.Files(), nil
}

// Lock reads the snapshot written by the last generation. The legacy lock
// file name is read when the current one is absent.
func (m *Manager) Lock() ([]*standard.DataSource, error) {
	for _, name := range []string{generator.LockFile, generator.LegacyLockFile} {
		data, err := os.ReadFile(filepath.Join(m.OutDir(), name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("manager: %w", err)
		}
		sources, err := generator.UnmarshalLock(data)
		if err != nil {
			return nil, fmt.Errorf("manager: %s: %w", name, err)
		}
		return sources, nil
	}
	return nil, fmt.Errorf("manager: no lock file in %s: %w", m.OutDir(), fs.ErrNotExist)
}

// Diff compares the lock snapshot with the current remote documents.
func (m *Manager) Diff(ctx context.Context, opts ...differ.Option) (*differ.Result, error) {
	old, err := m.Lock()
	if err != nil {
		return nil, err
	}
	current, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}
	return differ.DiffAll(old, current, opts...), nil
}

// Watch runs Generate immediately and then once per polling interval until
// ctx is canceled. Failed runs are logged and retried on the next tick.
func (m *Manager) Watch(ctx context.Context) error {
	m.logger.Info("watching origins", "interval", m.interval.String(), "origins", len(m.cfg.DataSources()))
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if _, err := m.Generate(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			m.logger.Error("generation failed", "error", err)
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
