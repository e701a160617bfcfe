package parser

import "log/slog"

// Logger receives diagnostics from every pipeline stage. Attrs follow the
// log/slog convention of alternating keys and values:
//
//	logger.Debug("compiled reference", "ref", "Page«User»")
//
// Stages attach context with With, so a transform for one origin logs
// "origin=petStore" on every line it emits.
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
	With(attrs ...any) Logger
}

// NopLogger discards everything. Stages use it when no logger is set.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any) {}
func (NopLogger) Warn(string, ...any) {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

// SlogAdapter exposes a *slog.Logger as a Logger. The level methods are
// promoted from the embedded logger.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter wraps logger, falling back to slog.Default when it is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{Logger: logger}
}

// With shadows slog.Logger.With so chained loggers stay adapters.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{Logger: s.Logger.With(attrs...)}
}

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)

// OrNop returns l, or a NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
