package ponterrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "reference syntax with definition",
			err:  &ReferenceSyntaxError{Ref: "Page«User", Definition: "Page«User", Offset: 9, Message: "expected '»'"},
			want: `reference syntax error in definition Page«User: "Page«User" at offset 9: expected '»'`,
		},
		{
			name: "reference syntax minimal",
			err:  &ReferenceSyntaxError{Offset: -1},
			want: "reference syntax error",
		},
		{
			name: "parse",
			err:  &ParseError{Source: "api.json", Message: "not JSON", Cause: cause},
			want: "parse error in api.json: not JSON: boom",
		},
		{
			name: "fetch with status",
			err:  &FetchError{URL: "http://x/api-docs", StatusCode: 502},
			want: "fetch error for http://x/api-docs: HTTP 502",
		},
		{
			name: "config",
			err:  &ConfigError{Path: "pont-config.json", Option: "originType", Value: "RAML", Message: "unsupported"},
			want: "configuration error in pont-config.json for originType (value: RAML): unsupported",
		},
		{
			name: "sync",
			err:  &SyncError{Path: "src/service/api.d.ts", Op: "write", Cause: cause},
			want: "sync error during write of src/service/api.d.ts: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestSentinels(t *testing.T) {
	cause := errors.New("underlying")
	errs := map[error]error{
		ErrReferenceSyntax: &ReferenceSyntaxError{Ref: "A<"},
		ErrParse:           &ParseError{Cause: cause},
		ErrFetch:           &FetchError{Cause: cause},
		ErrConfig:          &ConfigError{Cause: cause},
		ErrSync:            &SyncError{Cause: cause},
	}
	for sentinel, err := range errs {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("manager: %w", err)
			assert.ErrorIs(t, wrapped, sentinel)
			for other := range errs {
				if other != sentinel {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestUnwrapAndAs(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("fetcher: %w", &FetchError{URL: "http://x", Cause: cause})

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "http://x", fetchErr.URL)
	assert.ErrorIs(t, err, cause)

	var syncErr *SyncError
	assert.False(t, errors.As(err, &syncErr))
}
