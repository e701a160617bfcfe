package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Saber-Kurama/learn-pont/parser"
)

// docInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Swagger/OpenAPI file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a Swagger/OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// docCache holds parsed documents for the session. File entries are keyed
// by path and modification time, content entries by SHA-256 and URL entries
// by URL with a shorter TTL.
type docCache struct {
	once    sync.Once
	content *expirable.LRU[string, *parser.Document]
	urls    *expirable.LRU[string, *parser.Document]
}

var cache = &docCache{}

func (c *docCache) init() {
	c.once.Do(func() {
		c.content = expirable.NewLRU[string, *parser.Document](cfg.CacheMaxSize, nil, cfg.CacheContentTTL)
		c.urls = expirable.NewLRU[string, *parser.Document](cfg.CacheMaxSize, nil, cfg.CacheURLTTL)
	})
}

func (c *docCache) store(s docInput) *expirable.LRU[string, *parser.Document] {
	c.init()
	if s.URL != "" {
		return c.urls
	}
	return c.content
}

// reset clears all cached entries. Used in tests.
func (c *docCache) reset() {
	c.init()
	c.content.Purge()
	c.urls.Purge()
}

// cacheKey returns the cache key for s, or "" when it cannot be cached.
func cacheKey(s docInput) string {
	switch {
	case s.File != "":
		abs, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(abs)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:])
	case s.URL != "":
		return "url:" + s.URL
	default:
		return ""
	}
}

// read returns the raw bytes and a source name for s.
func (s docInput) read(ctx context.Context) ([]byte, string, error) {
	switch {
	case s.File != "":
		data, err := os.ReadFile(s.File) //nolint:gosec // the agent names the file on the user's machine
		return data, s.File, err
	case s.URL != "":
		f, err := newURLFetcher()
		if err != nil {
			return nil, s.URL, err
		}
		data, err := f.Fetch(ctx, s.URL)
		return data, s.URL, err
	default:
		return []byte(s.Content), "content", nil
	}
}

// resolve parses the document from whichever input was provided. A non-nil
// dialect forces the reference layout instead of detecting it.
func (s docInput) resolve(ctx context.Context, dialect *parser.Dialect) (*parser.Document, error) {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set PONT_MCP_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled && dialect == nil {
		key = cacheKey(s)
	}
	if key != "" {
		if doc, ok := cache.store(s).Get(key); ok {
			return doc, nil
		}
	}

	data, source, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	opts := []parser.Option{parser.WithSourceName(source)}
	if dialect != nil {
		opts = append(opts, parser.WithDialect(*dialect))
	}
	doc, err := parser.Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		cache.store(s).Add(key, doc)
	}
	return doc, nil
}

// parseDialect maps a dialect name to a forced dialect. Empty means detect.
func parseDialect(name string) (*parser.Dialect, error) {
	var d parser.Dialect
	switch name {
	case "":
		return nil, nil
	case "SwaggerV2", "swagger2", "2.0":
		d = parser.DialectSwaggerV2
	case "SwaggerV3", "openapi3", "3.0":
		d = parser.DialectOpenAPIV3
	default:
		return nil, fmt.Errorf("invalid dialect %q; valid values: SwaggerV2, SwaggerV3", name)
	}
	return &d, nil
}
