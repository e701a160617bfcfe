package ponterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrReferenceSyntax indicates a reference string failed to compile.
	ErrReferenceSyntax = errors.New("reference syntax error")

	// ErrParse indicates a document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrFetch indicates a remote document could not be retrieved.
	ErrFetch = errors.New("fetch error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrSync indicates a failed file system operation during generation.
	ErrSync = errors.New("sync error")
)

// ReferenceSyntaxError reports a reference string that does not match the
// type reference grammar.
type ReferenceSyntaxError struct {
	// Ref is the raw reference string
	Ref string
	// Definition is the schema definition being compiled, if any
	Definition string
	// Offset is the byte offset into Ref where parsing stopped (-1 if unknown)
	Offset int
	// Message describes what was expected
	Message string
}

// Error returns a human-readable error message.
func (e *ReferenceSyntaxError) Error() string {
	msg := "reference syntax error"
	if e.Definition != "" {
		msg += " in definition " + e.Definition
	}
	if e.Ref != "" {
		msg += fmt.Sprintf(": %q", e.Ref)
	}
	if e.Offset >= 0 && e.Ref != "" {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ReferenceSyntaxError) Is(target error) bool {
	return target == ErrReferenceSyntax
}

// ParseError represents a failure to decode a schema document.
type ParseError struct {
	// Source is the file path or URL of the document
	Source string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FetchError represents a failure to retrieve an origin's document.
type FetchError struct {
	// URL is the origin URL or file path
	URL string
	// StatusCode is the HTTP status, 0 when no response was received
	StatusCode int
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FetchError) Error() string {
	msg := "fetch error"
	if e.URL != "" {
		msg += " for " + e.URL
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.StatusCode)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// ConfigError represents an invalid configuration file or option.
type ConfigError struct {
	// Path is the configuration file, if known
	Path string
	// Option is the offending option name (e.g. "origins[1].name")
	Option string
	// Value is the rejected value (may be nil)
	Value any
	// Message describes why the configuration is invalid
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// SyncError represents a failed file system operation while materializing a
// generated tree. Files already written before the failure are left in place.
type SyncError struct {
	// Path is the file or directory being written
	Path string
	// Op is the operation that failed: "read", "write", "mkdir", "remove", "render"
	Op string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SyncError) Error() string {
	msg := "sync error"
	if e.Op != "" {
		msg += " during " + e.Op
	}
	if e.Path != "" {
		msg += " of " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SyncError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SyncError) Is(target error) bool {
	return target == ErrSync
}
