package fetcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	pont "github.com/Saber-Kurama/learn-pont"
	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/ponterrors"
)

const (
	// DefaultTimeout bounds a single fetch including retries.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 3
	// DefaultMaxBytes caps the size of a fetched document.
	DefaultMaxBytes int64 = 64 << 20
)

// Fetcher retrieves the raw bytes of an origin document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// Option configures an HTTPFetcher.
type Option func(*fetchConfig) error

type fetchConfig struct {
	maxRetries   int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	timeout      time.Duration
	maxBytes     int64
	userAgent    string
	transport    http.RoundTripper
	retryPolicy  retryablehttp.CheckRetry
	logger       parser.Logger
}

// WithMaxRetries sets how many times a failed request is retried.
func WithMaxRetries(n int) Option {
	return func(cfg *fetchConfig) error {
		if n < 0 {
			return fmt.Errorf("fetcher: max retries must not be negative, got %d", n)
		}
		cfg.maxRetries = n
		return nil
	}
}

// WithRetryWait sets the backoff bounds between retries.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(cfg *fetchConfig) error {
		if minWait < 0 || maxWait < minWait {
			return fmt.Errorf("fetcher: invalid retry wait bounds %s..%s", minWait, maxWait)
		}
		cfg.retryWaitMin = minWait
		cfg.retryWaitMax = maxWait
		return nil
	}
}

// WithTimeout bounds each fetch, retries included.
func WithTimeout(d time.Duration) Option {
	return func(cfg *fetchConfig) error {
		if d <= 0 {
			return fmt.Errorf("fetcher: timeout must be positive, got %s", d)
		}
		cfg.timeout = d
		return nil
	}
}

// WithMaxBytes caps the accepted document size.
func WithMaxBytes(n int64) Option {
	return func(cfg *fetchConfig) error {
		if n <= 0 {
			return fmt.Errorf("fetcher: max bytes must be positive, got %d", n)
		}
		cfg.maxBytes = n
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(cfg *fetchConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithTransport replaces the pooled default transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(cfg *fetchConfig) error {
		if rt == nil {
			return fmt.Errorf("fetcher: transport must not be nil")
		}
		cfg.transport = rt
		return nil
	}
}

// WithRetryPolicy replaces DefaultRetryPolicy.
func WithRetryPolicy(p retryablehttp.CheckRetry) Option {
	return func(cfg *fetchConfig) error {
		if p == nil {
			return fmt.Errorf("fetcher: retry policy must not be nil")
		}
		cfg.retryPolicy = p
		return nil
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l parser.Logger) Option {
	return func(cfg *fetchConfig) error {
		cfg.logger = parser.OrNop(l)
		return nil
	}
}

func applyOptions(opts ...Option) (*fetchConfig, error) {
	cfg := &fetchConfig{
		maxRetries:   DefaultMaxRetries,
		retryWaitMin: time.Second,
		retryWaitMax: 10 * time.Second,
		timeout:      DefaultTimeout,
		maxBytes:     DefaultMaxBytes,
		userAgent:    pont.UserAgent(),
		retryPolicy:  DefaultRetryPolicy,
		logger:       parser.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// leveledLogger routes retryablehttp output to a parser.Logger. Errors are
// logged as warnings since the request may still succeed on retry.
type leveledLogger struct {
	inner parser.Logger
}

func (l leveledLogger) Error(msg string, kv ...any) { l.inner.Warn(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...any)  { l.inner.Warn(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...any)  { l.inner.Debug(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...any) { l.inner.Debug(msg, kv...) }

// DefaultRetryPolicy wraps retryablehttp.DefaultRetryPolicy and treats
// 429 Too Many Requests as final.
func DefaultRetryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// HTTPFetcher fetches documents over HTTP with retries.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// NewHTTP returns an HTTPFetcher configured by opts.
func NewHTTP(opts ...Option) (*HTTPFetcher, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient.Transport = cleanhttp.DefaultPooledTransport()
	if cfg.transport != nil {
		rc.HTTPClient.Transport = cfg.transport
	}
	rc.RetryMax = cfg.maxRetries
	rc.RetryWaitMin = cfg.retryWaitMin
	rc.RetryWaitMax = cfg.retryWaitMax
	rc.CheckRetry = cfg.retryPolicy
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = retryablehttp.LeveledLogger(leveledLogger{inner: cfg.logger.With("subsystem", "fetcher")})

	client := rc.StandardClient()
	client.Timeout = cfg.timeout
	return &HTTPFetcher{client: client, userAgent: cfg.userAgent, maxBytes: cfg.maxBytes}, nil
}

// Fetch performs a GET on url and returns the body of a 2xx response.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ponterrors.FetchError{URL: url, Cause: err}
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &ponterrors.FetchError{URL: url, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ponterrors.FetchError{URL: url, StatusCode: resp.StatusCode}
	}
	data, err := readLimited(resp.Body, f.maxBytes)
	if err != nil {
		return nil, &ponterrors.FetchError{URL: url, StatusCode: resp.StatusCode, Cause: err}
	}
	if err := checkDocument(data); err != nil {
		return nil, &ponterrors.FetchError{URL: url, StatusCode: resp.StatusCode, Cause: err}
	}
	return data, nil
}

var errTooLarge = errors.New("document exceeds size limit")

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, errTooLarge
	}
	return data, nil
}

func checkDocument(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("empty document")
	}
	if parser.DetectFormat(data) == parser.SourceFormatUnknown {
		return errors.New("payload is not a JSON or YAML document")
	}
	return nil
}
