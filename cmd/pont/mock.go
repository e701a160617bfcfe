package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Saber-Kurama/learn-pont/config"
	"github.com/Saber-Kurama/learn-pont/generator"
	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/standard"
)

var cmdMock = &cli.Command{
	Name:  "mock",
	Usage: "serve sample responses for every interface in the lock snapshot",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "port",
			Usage:   "listen port (defaults to mocks.port)",
			EnvVars: []string{"PONT_MOCK_PORT"},
		},
	},
	Action: func(cctx *cli.Context) error {
		m, err := loadManager(cctx)
		if err != nil {
			return err
		}
		sources, err := m.Lock()
		if err != nil {
			return fmt.Errorf("mock: run generate first: %w", err)
		}
		mocks := m.Config().Mocks
		if p := cctx.Int("port"); p > 0 {
			mocks.Port = p
		}

		logger := parser.NewSlogAdapter(newLogger(cctx))
		handler := newMockHandler(sources, mocks, logger)
		addr := fmt.Sprintf(":%d", mocks.Port)
		logger.Info("serving mocks", "addr", addr, "basePath", mocks.BasePath)
		fmt.Fprintf(cctx.App.Writer, "mock server listening on %s\n", addr)

		srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			<-cctx.Context.Done()
			_ = srv.Close()
		}()
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

var pathParam = regexp.MustCompile(`\{[^}]*\}`)

// mockPattern converts an interface into a ServeMux pattern. Path
// parameters are renamed positionally so that equivalent paths collide.
func mockPattern(basePath string, inter *standard.Interface) string {
	n := 0
	path := pathParam.ReplaceAllStringFunc(inter.Path, func(string) string {
		n++
		return fmt.Sprintf("{p%d}", n)
	})
	return strings.ToUpper(inter.Method) + " " + strings.TrimRight(basePath, "/") + path
}

// newMockHandler routes each interface to a fixed sample of its response
// type, wrapped by the configured wrapper. Interfaces whose routes clash
// with an earlier one are skipped.
func newMockHandler(sources []*standard.DataSource, mocks config.Mocks, logger parser.Logger) http.Handler {
	mux := http.NewServeMux()
	seen := map[string]bool{}
	for _, ds := range sources {
		for _, mod := range ds.Mods {
			for _, inter := range mod.Interfaces {
				pattern := mockPattern(mocks.BasePath, inter)
				if seen[pattern] {
					logger.Warn("duplicate mock route", "pattern", pattern, "interface", mod.Name+"."+inter.Name)
					continue
				}
				body, err := json.Marshal(generator.MockValue(inter.Response, ds.BaseClasses))
				if err != nil {
					logger.Warn("cannot render mock", "interface", mod.Name+"."+inter.Name, "error", err)
					continue
				}
				if err := register(mux, pattern, []byte(mocks.Wrap(string(body)))); err != nil {
					logger.Warn("conflicting mock route", "pattern", pattern, "error", err)
					continue
				}
				seen[pattern] = true
				logger.Debug("mock route", "pattern", pattern)
			}
		}
	}
	return mux
}

// register adds a fixed-response route. ServeMux panics on patterns that
// conflict without one being more specific; that is reported as an error.
func register(mux *http.ServeMux, pattern string, payload []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
	})
	return nil
}
