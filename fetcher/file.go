package fetcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/ponterrors"
)

// FileFetcher reads documents from the local filesystem. Relative paths
// resolve against BaseDir when it is set.
type FileFetcher struct {
	BaseDir string
}

// Fetch reads the document at path. A file:// prefix is accepted.
func (f FileFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ponterrors.FetchError{URL: path, Cause: err}
	}
	name := strings.TrimPrefix(path, "file://")
	if f.BaseDir != "" && !filepath.IsAbs(name) {
		name = filepath.Join(f.BaseDir, name)
	}
	data, err := os.ReadFile(name) //nolint:gosec // origin paths come from the user's own config
	if err != nil {
		return nil, &ponterrors.FetchError{URL: path, Cause: err}
	}
	if err := checkDocument(data); err != nil {
		return nil, &ponterrors.FetchError{URL: path, Cause: err}
	}
	return data, nil
}

// Auto dispatches http(s) URLs to HTTP and everything else to File.
type Auto struct {
	HTTP Fetcher
	File Fetcher
}

// New returns an Auto fetcher whose HTTP side is configured by opts and
// whose file side resolves relative paths against baseDir.
func New(baseDir string, opts ...Option) (*Auto, error) {
	h, err := NewHTTP(opts...)
	if err != nil {
		return nil, err
	}
	return &Auto{HTTP: h, File: FileFetcher{BaseDir: baseDir}}, nil
}

// Fetch implements Fetcher.
func (a *Auto) Fetch(ctx context.Context, url string) ([]byte, error) {
	if parser.IsURL(url) {
		return a.HTTP.Fetch(ctx, url)
	}
	return a.File.Fetch(ctx, url)
}
