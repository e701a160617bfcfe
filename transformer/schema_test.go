package transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saber-Kurama/learn-pont/compiler"
	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/standard"
)

func newResolver(defs ...string) *typeResolver {
	return &typeResolver{
		compiler: compiler.New(0),
		keyword:  parser.DialectSwaggerV2.Keyword(),
		defs:     compiler.NewDefSet(defs...),
		logger:   parser.NopLogger{},
	}
}

func TestSchemaTypeSpecialForms(t *testing.T) {
	r := newResolver("User")
	tests := []struct {
		name   string
		schema *parser.Schema
		want   string
	}{
		{
			name:   "array of class",
			schema: &parser.Schema{Type: "array", Items: &parser.Schema{Ref: "#/definitions/User"}},
			want:   "Array<defs.User>",
		},
		{
			name:   "array of integer",
			schema: &parser.Schema{Type: "array", Items: &parser.Schema{Type: "integer"}},
			want:   "Array<number>",
		},
		{
			name:   "nested arrays",
			schema: &parser.Schema{Type: "array", Items: &parser.Schema{Type: "array", Items: &parser.Schema{Type: "string"}}},
			want:   "Array<Array<string>>",
		},
		{
			name:   "array without items",
			schema: &parser.Schema{Type: "array"},
			want:   "Array<any>",
		},
		{name: "integer", schema: &parser.Schema{Type: "integer"}, want: "number"},
		{name: "file", schema: &parser.Schema{Type: "file"}, want: "File"},
		{name: "untyped", schema: &parser.Schema{}, want: "any"},
		{name: "nil", schema: nil, want: "any"},
		{name: "plain object", schema: &parser.Schema{Type: "object"}, want: "object"},
		{
			name:   "enum",
			schema: &parser.Schema{Type: "string", Enum: []any{"a", "b"}},
			want:   "'a' | 'b'",
		},
		{
			name:   "map of class",
			schema: &parser.Schema{Type: "object", AllowsAdditional: true, AdditionalProperties: &parser.Schema{Ref: "#/definitions/User"}},
			want:   "ObjectMap<string, defs.User>",
		},
		{
			name:   "free-form map",
			schema: &parser.Schema{Type: "object", AllowsAdditional: true},
			want:   "ObjectMap<string, any>",
		},
		{
			name: "inline object",
			schema: &parser.Schema{Type: "object", Required: []string{"id"}, Properties: map[string]*parser.Schema{
				"id":    {Type: "integer"},
				"owner": {Ref: "#/definitions/User"},
			}},
			want: "{ id: number; owner: defs.User; }",
		},
		{
			name:   "generic reference",
			schema: &parser.Schema{Ref: "#/definitions/List«User»"},
			want:   "Array<defs.User>",
		},
		{
			name:   "malformed reference falls back to any",
			schema: &parser.Schema{Ref: "#/definitions/Page«User"},
			want:   "any",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.SchemaType(tt.schema, nil).Code(""))
		})
	}
}

func TestSchemaTypeArrayElementIsClass(t *testing.T) {
	r := newResolver("User")
	dt := r.SchemaType(&parser.Schema{Type: "array", Items: &parser.Schema{Ref: "#/definitions/User"}}, nil)
	require.True(t, dt.IsArray())
	require.Len(t, dt.TypeArgs, 1)
	assert.True(t, dt.TypeArgs[0].IsDefsType)
	assert.Equal(t, "User", dt.TypeArgs[0].TypeName)
}

func TestSchemaTypeBindsTemplateArgs(t *testing.T) {
	r := newResolver("User", "Page")
	classArgs := []*standard.DataType{standard.Defs("User")}

	member := r.SchemaType(&parser.Schema{Type: "array", Items: &parser.Schema{Ref: "#/definitions/User"}}, classArgs)
	assert.Equal(t, "Array<T0>", member.Code(""))

	// Inline primitives are never bound, even when they render like a parameter.
	primitive := r.SchemaType(&parser.Schema{Type: "string"}, []*standard.DataType{standard.NewDataType("string")})
	assert.Equal(t, "string", primitive.Code(""))
}

func TestEnumLiterals(t *testing.T) {
	tests := []struct {
		name   string
		values []any
		want   []string
	}{
		{name: "strings", values: []any{"a", "b"}, want: []string{"'a'", "'b'"}},
		{name: "numbers from json", values: []any{float64(1), float64(2.5)}, want: []string{"1", "2.5"}},
		{name: "numbers from yaml", values: []any{1, 2}, want: []string{"1", "2"}},
		{name: "booleans and null", values: []any{true, nil}, want: []string{"true", "null"}},
		{name: "quotes escaped", values: []any{"it's"}, want: []string{`'it\'s'`}},
		{name: "duplicates removed", values: []any{"a", "a", "b"}, want: []string{"'a'", "'b'"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnumLiterals(tt.values))
		})
	}
}
