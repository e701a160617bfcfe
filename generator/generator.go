package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/standard"
	"github.com/Saber-Kurama/learn-pont/syncer"
)

// Surrounding selects the language of runnable units.
type Surrounding string

const (
	TypeScript Surrounding = "typeScript"
	JavaScript Surrounding = "javaScript"
)

// Extension returns the file extension for runnable units.
func (s Surrounding) Extension() string {
	if s == JavaScript {
		return ".js"
	}
	return ".ts"
}

// Fixed artifact names.
const (
	DeclarationFile = "api.d.ts"
	LockFile        = "api-lock.json"
	// LegacyLockFile is read, never written.
	LegacyLockFile = "api.lock"
)

// Generator renders the code units of one or more data sources.
type Generator struct {
	sources     []*standard.DataSource
	multiple    bool
	surrounding Surrounding
	template    Template
	formatter   Formatter
	logger      parser.Logger
}

// Option configures a Generator.
type Option func(*generateConfig) error

type generateConfig struct {
	multipleOrigins bool
	surrounding     Surrounding
	templateName    string
	template        *Template
	formatter       Formatter
	logger          parser.Logger
}

// WithMultipleOrigins nests every data source under its own directory and
// namespace. It is implied when more than one data source is given.
func WithMultipleOrigins(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.multipleOrigins = enabled
		return nil
	}
}

// WithSurrounding selects TypeScript or JavaScript runnable units.
// Default: TypeScript
func WithSurrounding(s Surrounding) Option {
	return func(cfg *generateConfig) error {
		switch s {
		case TypeScript, JavaScript:
			cfg.surrounding = s
			return nil
		}
		return fmt.Errorf("generator: unknown surrounding %q", s)
	}
}

// WithTemplate selects a registered template by name.
// Default: "default"
func WithTemplate(name string) Option {
	return func(cfg *generateConfig) error {
		cfg.templateName = name
		return nil
	}
}

// WithCustomTemplate uses t without registering it. It takes precedence
// over WithTemplate.
func WithCustomTemplate(t Template) Option {
	return func(cfg *generateConfig) error {
		t = t.withDefaults()
		cfg.template = &t
		return nil
	}
}

// WithFormatter sets the formatter applied to every non-JSON unit.
// Default: BasicFormatter
func WithFormatter(f Formatter) Option {
	return func(cfg *generateConfig) error {
		if f == nil {
			return fmt.Errorf("generator: nil formatter")
		}
		cfg.formatter = f
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(l parser.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = parser.OrNop(l)
		return nil
	}
}

func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		surrounding: TypeScript,
		formatter:   BasicFormatter{},
		logger:      parser.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// New returns a Generator for the given data sources. In multiple-origin
// mode every data source needs a unique identifier name.
func New(sources []*standard.DataSource, opts ...Option) (*Generator, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("generator: no data sources")
	}

	tmpl := cfg.template
	if tmpl == nil {
		t, ok := LookupTemplate(cfg.templateName)
		if !ok {
			return nil, fmt.Errorf("generator: unknown template %q (registered: %s)",
				cfg.templateName, strings.Join(TemplateNames(), ", "))
		}
		tmpl = &t
	}

	g := &Generator{
		sources:     sources,
		multiple:    cfg.multipleOrigins || len(sources) > 1,
		surrounding: cfg.surrounding,
		template:    *tmpl,
		formatter:   cfg.formatter,
		logger:      cfg.logger,
	}
	if g.multiple {
		seen := make(map[string]bool, len(sources))
		for _, ds := range sources {
			if !standard.IsIdentifier(ds.Name) {
				return nil, fmt.Errorf("generator: origin name %q is not an identifier", ds.Name)
			}
			if seen[ds.Name] {
				return nil, fmt.Errorf("generator: duplicate origin name %q", ds.Name)
			}
			seen[ds.Name] = true
		}
	}
	return g, nil
}

// DataSources returns the rendered data sources.
func (g *Generator) DataSources() []*standard.DataSource { return g.sources }

// MultipleOrigins reports whether origins are nested.
func (g *Generator) MultipleOrigins() bool { return g.multiple }

// Surrounding returns the language of runnable units.
func (g *Generator) Surrounding() Surrounding { return g.surrounding }

// Origin returns the namespace qualifier used when rendering ds: its name
// in multiple-origin mode, empty otherwise.
func (g *Generator) Origin(ds *standard.DataSource) string {
	if g.multiple {
		return ds.Name
	}
	return ""
}

// FileName appends the runnable extension to base.
func (g *Generator) FileName(base string) string {
	return base + g.surrounding.Extension()
}

// Files returns the formatted tree chosen by the template.
func (g *Generator) Files() syncer.Dir {
	return g.formatDir("", g.template.FileStructure(g))
}

func (g *Generator) formatDir(prefix string, dir syncer.Dir) syncer.Dir {
	out := make(syncer.Dir, len(dir))
	for name, node := range dir {
		p := name
		if prefix != "" {
			p = prefix + "/" + name
		}
		if sub, ok := node.(syncer.Dir); ok {
			out[name] = g.formatDir(p, sub)
			continue
		}
		out[name] = g.formatNode(p, node)
	}
	return out
}

func (g *Generator) formatNode(p string, node syncer.Node) syncer.Node {
	if strings.HasSuffix(p, ".json") {
		return node
	}
	return syncer.Lazy(func() (string, error) {
		code, err := syncer.Content(node)
		if err != nil {
			return "", err
		}
		formatted, err := g.formatter.Format(p, code)
		if err != nil {
			g.logger.Warn("formatting failed, keeping unformatted output", "file", p, "error", err)
			return code, nil
		}
		return formatted, nil
	})
}

// Lock renders the snapshot of every data source.
func (g *Generator) Lock() (string, error) {
	return MarshalLock(g.sources)
}

// MarshalLock renders a lock snapshot.
func MarshalLock(sources []*standard.DataSource) (string, error) {
	data, err := json.MarshalIndent(sources, "", "  ")
	if err != nil {
		return "", fmt.Errorf("generator: marshal lock: %w", err)
	}
	return string(data) + "\n", nil
}

// UnmarshalLock parses a lock snapshot. A single object is accepted as a
// one-element list.
func UnmarshalLock(data []byte) ([]*standard.DataSource, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var ds standard.DataSource
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("generator: parse lock: %w", err)
		}
		return []*standard.DataSource{&ds}, nil
	}
	var sources []*standard.DataSource
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("generator: parse lock: %w", err)
	}
	return sources, nil
}
