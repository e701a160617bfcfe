// Package ponterrors provides structured error types for pont.
//
// Import path: github.com/Saber-Kurama/learn-pont/ponterrors
//
// Every stage of the generation pipeline reports failures through one of
// these types so callers can branch with [errors.Is] and [errors.As] instead
// of matching on message text.
//
// # Error Types
//
//   - [ReferenceSyntaxError]: a reference string or definition name does not parse
//   - [ParseError]: a schema document is not valid JSON or YAML
//   - [FetchError]: a remote document could not be retrieved or decoded
//   - [ConfigError]: pont-config.json is malformed or holds an invalid value
//   - [SyncError]: a file system operation failed while writing generated code
//
// # Sentinel Errors
//
//   - [ErrReferenceSyntax]: Matches any [ReferenceSyntaxError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrFetch]: Matches any [FetchError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrSync]: Matches any [SyncError]
//
// # Usage Examples
//
//	ds, err := transformer.Transform(doc)
//	if errors.Is(err, ponterrors.ErrReferenceSyntax) {
//	    var refErr *ponterrors.ReferenceSyntaxError
//	    errors.As(err, &refErr)
//	    log.Printf("bad definition %q", refErr.Definition)
//	}
package ponterrors
