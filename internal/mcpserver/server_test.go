package mcpserver

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		offset int
		limit  int
		want   []int
	}{
		{name: "default limit returns all", offset: 0, limit: 0, want: []int{0, 1, 2, 3, 4}},
		{name: "explicit limit", offset: 0, limit: 2, want: []int{0, 1}},
		{name: "offset and limit", offset: 1, limit: 2, want: []int{1, 2}},
		{name: "offset at end", offset: 4, limit: 2, want: []int{4}},
		{name: "offset beyond end", offset: 5, limit: 2, want: nil},
		{name: "negative offset", offset: -1, limit: 2, want: nil},
		{name: "overflowing limit", offset: 1, limit: math.MaxInt, want: []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(items, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_MaxLimitCap(t *testing.T) {
	prev := cfg.MaxLimit
	t.Cleanup(func() { cfg.MaxLimit = prev })
	cfg.MaxLimit = 3

	items := make([]int, 10)
	assert.Len(t, paginate(items, 0, 50), 3)
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("open /home/dev/api.json: no such file"), "open <path>: no such file"},
		{fmt.Errorf("fetch error for https://example.com/v2/api-docs: HTTP 404"), "fetch error for https://example.com/v2/api-docs: HTTP 404"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeError(tt.err))
	}
}

func TestErrResult(t *testing.T) {
	r := errResult(errors.New("read /tmp/x.json failed"))
	assert.True(t, r.IsError)
	assert.Len(t, r.Content, 1)
}
