package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds the MCP server defaults, read once from PONT_MCP_*
// environment variables.
type serverConfig struct {
	// Document cache.
	CacheEnabled    bool
	CacheMaxSize    int
	CacheURLTTL     time.Duration
	CacheContentTTL time.Duration

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// generate tool listing.
	FileLimit int
	MaxLimit  int
}

var cfg = loadConfig()

// loadConfig reads PONT_MCP_* variables. Invalid values log a warning and
// fall back to the default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:    envBool("PONT_MCP_CACHE_ENABLED", true),
		CacheMaxSize:    envInt("PONT_MCP_CACHE_MAX_SIZE", 16),
		CacheURLTTL:     envDuration("PONT_MCP_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL: envDuration("PONT_MCP_CACHE_CONTENT_TTL", 15*time.Minute),
		MaxInlineSize:   int64(envInt("PONT_MCP_MAX_INLINE_SIZE", 10<<20)),
		AllowPrivateIPs: envBool("PONT_MCP_ALLOW_PRIVATE_IPS", false),
		FileLimit:       envInt("PONT_MCP_FILE_LIMIT", 100),
		MaxLimit:        envInt("PONT_MCP_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
