package parser

import (
	"bytes"
	"strings"
)

// SourceFormat is the serialization of a schema document.
type SourceFormat string

const (
	// SourceFormatJSON indicates a JSON document.
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates a YAML document.
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatUnknown indicates the format could not be determined.
	SourceFormatUnknown SourceFormat = "unknown"
)

// detectFormatFromContent guesses the format from the first significant
// byte: JSON documents start with '{' or '[', anything else is read as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r\ufeff")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// IsURL reports whether path is an http:// or https:// URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// DetectFormat reports the serialization of data. Markup such as an HTML
// error page is reported as unknown.
func DetectFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return SourceFormatUnknown
	}
	return detectFormatFromContent(data)
}
