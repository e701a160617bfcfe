package pont

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())

	old := version
	t.Cleanup(func() { version = old })
	version = "v1.2.3"
	assert.Equal(t, "v1.2.3", Version())
	assert.Equal(t, "pont/v1.2.3", UserAgent())
}

func TestCommit(t *testing.T) {
	assert.NotEmpty(t, Commit())
}

func TestUserAgentPrefix(t *testing.T) {
	assert.True(t, strings.HasPrefix(UserAgent(), "pont/"))
}
