package transformer

import (
	"errors"
	"fmt"

	"github.com/Saber-Kurama/learn-pont/compiler"
	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/standard"
)

// DefaultModule names the group of operations without tags.
const DefaultModule = "defaultModule"

// Option is a function that configures a transformation.
type Option func(*transformConfig) error

type transformConfig struct {
	usingOperationID bool
	originName       string
	compiler         *compiler.Compiler
	logger           parser.Logger
}

// WithUsingOperationID selects operationId-derived names (the default)
// instead of path-derived names.
func WithUsingOperationID(v bool) Option {
	return func(cfg *transformConfig) error {
		cfg.usingOperationID = v
		return nil
	}
}

// WithOriginName sets the origin name stored on the data source.
func WithOriginName(name string) Option {
	return func(cfg *transformConfig) error {
		cfg.originName = name
		return nil
	}
}

// WithCompiler shares a reference compiler, and its cache, across
// transformations.
func WithCompiler(c *compiler.Compiler) Option {
	return func(cfg *transformConfig) error {
		if c == nil {
			return errors.New("compiler is nil")
		}
		cfg.compiler = c
		return nil
	}
}

// WithLogger sets the logger. Defaults to parser.NopLogger.
func WithLogger(l parser.Logger) Option {
	return func(cfg *transformConfig) error {
		cfg.logger = l
		return nil
	}
}

func applyOptions(opts ...Option) (*transformConfig, error) {
	cfg := &transformConfig{usingOperationID: true}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.compiler == nil {
		cfg.compiler = compiler.New(0)
	}
	cfg.logger = parser.OrNop(cfg.logger)
	return cfg, nil
}

// Transform converts doc into a data source.
func Transform(doc *parser.Document, opts ...Option) (*standard.DataSource, error) {
	if doc == nil {
		return nil, errors.New("transformer: document is nil")
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("transformer: invalid options: %w", err)
	}

	t := &transformer{
		cfg:    cfg,
		doc:    doc,
		logger: cfg.logger.With("origin", cfg.originName),
	}
	classes, err := t.transformDefinitions()
	if err != nil {
		return nil, fmt.Errorf("transformer: %w", err)
	}
	mods := t.transformOperations()

	ds := &standard.DataSource{
		Name:        cfg.originName,
		BaseClasses: classes,
		Mods:        mods,
	}
	ds.SortMods()
	t.logger.Debug("transformed document",
		"classes", len(ds.BaseClasses),
		"mods", len(ds.Mods),
		"interfaces", len(ds.Interfaces()),
	)
	return ds, nil
}

type transformer struct {
	cfg      *transformConfig
	doc      *parser.Document
	resolver *typeResolver
	logger   parser.Logger
}
