package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/Saber-Kurama/learn-pont/ponterrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	sourceName string
	dialect    *Dialect
	logger     Logger
}

// WithSourceName names the document in errors and log entries.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithDialect forces the dialect instead of detecting it from the
// swagger/openapi version field.
func WithDialect(d Dialect) Option {
	return func(cfg *parseConfig) error {
		if d != DialectSwaggerV2 && d != DialectOpenAPIV3 {
			return fmt.Errorf("unknown dialect %d", d)
		}
		cfg.dialect = &d
		return nil
	}
}

// WithLogger sets the logger. Defaults to NopLogger.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{sourceName: "document"}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	cfg.logger = OrNop(cfg.logger)
	return cfg, nil
}

// Parse decodes a JSON or YAML schema document.
func Parse(data []byte, opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	raw, err := decodeRaw(data)
	if err != nil {
		return nil, &ponterrors.ParseError{Source: cfg.sourceName, Cause: err}
	}

	dialect := detectDialect(raw)
	if cfg.dialect != nil {
		dialect = *cfg.dialect
	} else if raw["swagger"] == nil && raw["openapi"] == nil {
		cfg.logger.Warn("no swagger or openapi version field, assuming Swagger 2.0", "source", cfg.sourceName)
	}

	d := &decoder{dialect: dialect, logger: cfg.logger.With("source", cfg.sourceName)}
	doc := d.decodeDocument(raw)
	cfg.logger.Debug("parsed document",
		"source", cfg.sourceName,
		"dialect", dialect.String(),
		"definitions", len(doc.Definitions),
		"paths", len(doc.Paths),
	)
	return doc, nil
}

// ParseFile reads and decodes a schema document from disk.
func ParseFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, &ponterrors.ParseError{Source: path, Message: "cannot read file", Cause: err}
	}
	return Parse(data, append([]Option{WithSourceName(path)}, opts...)...)
}

// decodeRaw unmarshals data into a generic map. JSON takes the
// encoding/json fast path.
func decodeRaw(data []byte) (map[string]any, error) {
	var raw map[string]any
	switch detectFormatFromContent(data) {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case SourceFormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		raw = stringKeys(raw).(map[string]any)
	default:
		return nil, fmt.Errorf("empty document")
	}
	if raw == nil {
		return nil, fmt.Errorf("document is not an object")
	}
	return raw, nil
}

func detectDialect(raw map[string]any) Dialect {
	if _, ok := raw["openapi"]; ok {
		return DialectOpenAPIV3
	}
	if _, ok := raw["components"]; ok {
		if _, ok := raw["definitions"]; !ok {
			return DialectOpenAPIV3
		}
	}
	return DialectSwaggerV2
}
