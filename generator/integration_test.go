package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/standard"
	"github.com/Saber-Kurama/learn-pont/syncer"
	"github.com/Saber-Kurama/learn-pont/transformer"
)

func petstore(t *testing.T) *standard.DataSource {
	t.Helper()
	doc, err := parser.ParseFile("../testdata/petstore-swagger2.json")
	require.NoError(t, err)
	ds, err := transformer.Transform(doc)
	require.NoError(t, err)
	return ds
}

func generate(t *testing.T, ds *standard.DataSource) syncer.Dir {
	t.Helper()
	g, err := New([]*standard.DataSource{ds})
	require.NoError(t, err)
	return g.Files()
}

func TestPetstoreUnits(t *testing.T) {
	files := generate(t, petstore(t))

	result := content(t, files, "defs/Result.d.ts")
	assert.Contains(t, result, "export class Result<T0 = any> {")
	assert.Contains(t, result, "data?: T0;")

	page := content(t, files, "defs/Page.d.ts")
	assert.Contains(t, page, "content?: Array<T0>;")

	order := content(t, files, "defs/Order.d.ts")
	assert.Contains(t, order, "meta?: ObjectMap<string, string>;")
	assert.Contains(t, order, "attachment?: File;")
	assert.Contains(t, order, "note?: string;")

	user := content(t, files, "mods/user.d.ts")
	assert.Contains(t, user, "export type Response = defs.Result<defs.Page<defs.User>>;")
	assert.Contains(t, user, "role?: 'admin' | 'guest';")
	assert.Contains(t, user, "bodyParams: defs.User")

	base := content(t, files, "baseClass.ts")
	assert.Contains(t, base, "export class TreeNode {\n  children = [];\n  name = '';\n  parent = {};\n}")
	assert.Contains(t, base, "role = 'admin';")
}

func TestRegenerationTouchesOnlyChangedUnits(t *testing.T) {
	root := t.TempDir()
	s, err := syncer.New()
	require.NoError(t, err)
	ctx := context.Background()

	first, err := s.Sync(ctx, root, generate(t, petstore(t)))
	require.NoError(t, err)
	assert.NotEmpty(t, first.Written)

	unchanged, err := s.Sync(ctx, root, generate(t, petstore(t)))
	require.NoError(t, err)
	assert.Empty(t, unchanged.Written, "an unchanged model rewrites nothing")

	ds := petstore(t)
	ds.Class("User").Description = "a registered user"
	changed, err := s.Sync(ctx, root, generate(t, ds))
	require.NoError(t, err)
	assert.Equal(t, []string{"api-lock.json", "defs/User.d.ts"}, changed.Written)
}
