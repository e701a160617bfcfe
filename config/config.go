package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/ponterrors"
)

// FileName is the configuration file looked up by default.
const FileName = "pont-config.json"

// Origin types.
const (
	OriginSwaggerV2 = "SwaggerV2"
	OriginSwaggerV3 = "SwaggerV3"
)

// Surroundings.
const (
	SurroundingTypeScript = "typeScript"
	SurroundingJavaScript = "javaScript"
)

// ResponsePlaceholder marks where the mock wrapper embeds a response.
const ResponsePlaceholder = "{response}"

// Mocks configures the mock server.
type Mocks struct {
	Enable   bool   `json:"enable"`
	Port     int    `json:"port"`
	BasePath string `json:"basePath"`
	Wrapper  string `json:"wrapper"`
}

// Wrap embeds a JSON response into the wrapper.
func (m Mocks) Wrap(response string) string {
	return strings.Replace(m.Wrapper, ResponsePlaceholder, response, 1)
}

// Origin is one entry of the origins list.
type Origin struct {
	Name             string `json:"name"`
	OriginURL        string `json:"originUrl"`
	OriginType       string `json:"originType,omitempty"`
	UsingOperationID *bool  `json:"usingOperationId,omitempty"`
}

// Config is the decoded configuration file.
type Config struct {
	OriginURL            string   `json:"originUrl,omitempty"`
	OriginType           string   `json:"originType"`
	Name                 string   `json:"name,omitempty"`
	UsingOperationID     bool     `json:"usingOperationId"`
	UsingMultipleOrigins bool     `json:"usingMultipleOrigins"`
	TaggedByName         bool     `json:"taggedByName"`
	TemplatePath         string   `json:"templatePath"`
	TemplateType         string   `json:"templateType"`
	Surrounding          string   `json:"surrounding"`
	OutDir               string   `json:"outDir"`
	PollingTime          int      `json:"pollingTime"`
	Mocks                Mocks    `json:"mocks"`
	Origins              []Origin `json:"origins,omitempty"`

	// Path is the file the configuration was loaded from.
	Path string `json:"-"`
}

// Default returns the configuration used for omitted options.
func Default() *Config {
	return &Config{
		OriginType:       OriginSwaggerV2,
		UsingOperationID: true,
		TaggedByName:     true,
		TemplatePath:     "serviceTemplate",
		Surrounding:      SurroundingTypeScript,
		OutDir:           "src/service",
		PollingTime:      1200,
		Mocks: Mocks{
			Port:    8080,
			Wrapper: `{"code":0,"data":{response},"message":""}`,
		},
	}
}

// Load reads, applies environment overrides to, and validates a
// configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ponterrors.ConfigError{Path: path, Message: "cannot read configuration", Cause: err}
	}
	return Parse(data, path)
}

// Parse decodes a configuration. path locates relative output directories.
// Unknown options are ignored.
func Parse(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &ponterrors.ConfigError{Path: path, Message: "malformed JSON", Cause: err}
	}
	cfg.Path = path
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PONT_OUT_DIR"); v != "" {
		c.OutDir = v
	}
	c.PollingTime = envInt("PONT_POLLING_TIME", c.PollingTime)
	c.UsingOperationID = envBool("PONT_USING_OPERATION_ID", c.UsingOperationID)
}

func (c *Config) invalid(option string, value any, msg string) error {
	return &ponterrors.ConfigError{Path: c.Path, Option: option, Value: value, Message: msg}
}

// Validate checks option values.
func (c *Config) Validate() error {
	if err := validOriginType("originType", c.OriginType, c); err != nil {
		return err
	}
	switch c.Surrounding {
	case SurroundingTypeScript, SurroundingJavaScript:
	default:
		return c.invalid("surrounding", c.Surrounding, "must be typeScript or javaScript")
	}
	if c.PollingTime <= 0 {
		return c.invalid("pollingTime", c.PollingTime, "must be positive")
	}
	if c.OutDir == "" {
		return c.invalid("outDir", nil, "must not be empty")
	}
	if !strings.Contains(c.Mocks.Wrapper, ResponsePlaceholder) {
		return c.invalid("mocks.wrapper", c.Mocks.Wrapper, "must contain "+ResponsePlaceholder)
	}
	if c.Mocks.Port < 0 || c.Mocks.Port > 65535 {
		return c.invalid("mocks.port", c.Mocks.Port, "out of range")
	}

	if len(c.Origins) == 0 {
		if c.OriginURL == "" {
			return c.invalid("originUrl", nil, "an originUrl or an origins list is required")
		}
		return nil
	}
	seen := make(map[string]bool, len(c.Origins))
	for i, o := range c.Origins {
		prefix := fmt.Sprintf("origins[%d]", i)
		if o.OriginURL == "" {
			return c.invalid(prefix+".originUrl", nil, "must not be empty")
		}
		if o.OriginType != "" {
			if err := validOriginType(prefix+".originType", o.OriginType, c); err != nil {
				return err
			}
		}
		if c.MultipleOrigins() {
			if o.Name == "" {
				return c.invalid(prefix+".name", nil, "required with multiple origins")
			}
			if seen[o.Name] {
				return c.invalid(prefix+".name", o.Name, "duplicate origin name")
			}
			seen[o.Name] = true
		}
	}
	return nil
}

func validOriginType(option, value string, c *Config) error {
	switch value {
	case OriginSwaggerV2, OriginSwaggerV3:
		return nil
	}
	return c.invalid(option, value, "must be SwaggerV2 or SwaggerV3")
}

// MultipleOrigins reports whether output is nested per origin.
func (c *Config) MultipleOrigins() bool {
	return c.UsingMultipleOrigins || len(c.Origins) > 1
}

// PollingInterval returns pollingTime as a duration.
func (c *Config) PollingInterval() time.Duration {
	return time.Duration(c.PollingTime) * time.Second
}

// ResolvedOutDir returns outDir, resolved against the configuration file's
// directory when relative.
func (c *Config) ResolvedOutDir() string {
	if filepath.IsAbs(c.OutDir) || c.Path == "" {
		return c.OutDir
	}
	return filepath.Join(filepath.Dir(c.Path), c.OutDir)
}

// DataSource is the merged configuration of one origin.
type DataSource struct {
	Name             string
	OriginURL        string
	OriginType       string
	UsingOperationID bool
}

// Dialect returns the forced document dialect, or nil to detect it from the
// document.
func (d DataSource) Dialect() *parser.Dialect {
	if d.OriginType != OriginSwaggerV3 {
		return nil
	}
	v3 := parser.DialectOpenAPIV3
	return &v3
}

// DataSources returns one merged entry per origin, in declaration order.
func (c *Config) DataSources() []DataSource {
	if len(c.Origins) == 0 {
		return []DataSource{{
			Name:             c.Name,
			OriginURL:        c.OriginURL,
			OriginType:       c.OriginType,
			UsingOperationID: c.UsingOperationID,
		}}
	}
	out := make([]DataSource, len(c.Origins))
	for i, o := range c.Origins {
		ds := DataSource{
			Name:             o.Name,
			OriginURL:        o.OriginURL,
			OriginType:       c.OriginType,
			UsingOperationID: c.UsingOperationID,
		}
		if o.OriginType != "" {
			ds.OriginType = o.OriginType
		}
		if o.UsingOperationID != nil {
			ds.UsingOperationID = *o.UsingOperationID
		}
		out[i] = ds
	}
	return out
}
