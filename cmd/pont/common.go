package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v4"

	"github.com/Saber-Kurama/learn-pont/config"
	"github.com/Saber-Kurama/learn-pont/history"
	"github.com/Saber-Kurama/learn-pont/manager"
	"github.com/Saber-Kurama/learn-pont/parser"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Usage: "output format (text, json, yaml)",
	Value: FormatText,
	Action: func(_ *cli.Context, v string) error {
		return validateOutputFormat(v)
	},
}

var historyFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "history",
		Usage:   "record a snapshot of every changed model",
		EnvVars: []string{"PONT_HISTORY"},
	},
	&cli.StringFlag{
		Name:    "history-dir",
		Usage:   "snapshot directory (defaults to the XDG data directory)",
		EnvVars: []string{"PONT_HISTORY_DIR"},
	},
}

func validateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// outputStructured writes data as JSON or YAML.
func outputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(string(out), "\n"))
	return err
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// newLogger builds the stderr logger from --log-level and --verbose.
func newLogger(cctx *cli.Context) *slog.Logger {
	level := parseLevel(cctx.String("log-level"))
	if cctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func historyStore(cctx *cli.Context) history.Store {
	return history.NewFileStore(cctx.String("history-dir"))
}

// loadManager reads the configuration named by --config and builds a
// manager logging through the CLI logger.
func loadManager(cctx *cli.Context, opts ...manager.Option) (*manager.Manager, error) {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return nil, err
	}
	logger := newLogger(cctx)
	opts = append([]manager.Option{manager.WithLogger(parser.NewSlogAdapter(logger))}, opts...)
	if cctx.Bool("history") {
		opts = append(opts, manager.WithHistory(historyStore(cctx)))
	}
	return manager.New(cfg, opts...)
}
