package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saber-Kurama/learn-pont/ponterrors"
)

func TestParseFileSwagger2(t *testing.T) {
	doc, err := ParseFile("../testdata/petstore-swagger2.json")
	require.NoError(t, err)

	assert.Equal(t, DialectSwaggerV2, doc.Dialect)
	assert.Equal(t, "#/definitions/", doc.Dialect.Keyword())
	assert.Equal(t, "2.0", doc.Version)
	assert.Equal(t, "Petstore", doc.Title)
	assert.Equal(t, []string{"application/json"}, doc.Consumes)
	assert.Len(t, doc.Tags, 3)
	assert.Equal(t, Tag{Name: "user-controller", Description: "User Controller"}, doc.Tags[0])

	assert.Equal(t, []string{"Order", "Page«User»", "Result«Page«User»»", "TreeNode", "User"}, doc.DefinitionNames())

	user := doc.Definitions["User"]
	require.NotNil(t, user)
	assert.True(t, user.IsRequired("id"))
	assert.False(t, user.IsRequired("name"))
	assert.Equal(t, []any{"admin", "guest"}, user.Properties["role"].Enum)
	assert.Equal(t, "string", user.Properties["tags"].Items.Type)

	order := doc.Definitions["Order"]
	assert.True(t, order.Properties["meta"].AllowsAdditional)
	assert.Equal(t, "string", order.Properties["meta"].AdditionalProperties.Type)

	item := doc.Paths["/api/user/{id}"]
	require.NotNil(t, item)
	require.Len(t, item.Parameters, 1)
	assert.Equal(t, "X-Tenant", item.Parameters[0].Name)
	get := item.Operations["get"]
	require.NotNil(t, get)
	assert.Equal(t, "getUserUsingGET", get.OperationID)
	assert.Equal(t, "#/definitions/User", get.Responses["200"].Ref)

	search := doc.Paths["/api/user/search"].Operations["post"]
	body := search.Parameters[0]
	assert.Equal(t, "body", body.In)
	assert.Equal(t, "#/definitions/User", body.AsSchema().Ref)
}

func TestParseFileOpenAPI3(t *testing.T) {
	doc, err := ParseFile("../testdata/petstore-openapi3.yaml")
	require.NoError(t, err)

	assert.Equal(t, DialectOpenAPIV3, doc.Dialect)
	assert.Equal(t, "#/components/schemas/", doc.Dialect.Keyword())
	require.Contains(t, doc.Definitions, "Pet")
	assert.True(t, doc.Definitions["Pet"].Properties["labels"].AllowsAdditional)
	assert.Nil(t, doc.Definitions["Pet"].Properties["labels"].AdditionalProperties)

	list := doc.Paths["/pets"].Operations["get"]
	require.Len(t, list.Parameters, 1)
	assert.Equal(t, "limit", list.Parameters[0].Name, "shared parameter is dereferenced")
	assert.Equal(t, "integer", list.Parameters[0].Type)
	assert.Equal(t, "array", list.Responses["200"].Type)

	create := doc.Paths["/pets"].Operations["post"]
	require.Len(t, create.Parameters, 1)
	assert.Equal(t, "body", create.Parameters[0].In)
	assert.True(t, create.Parameters[0].Required)
	assert.Equal(t, "#/components/schemas/Pet", create.Parameters[0].Schema.Ref)
	assert.Equal(t, []string{"application/json"}, create.Consumes)

	show := doc.Paths["/pets/{petId}"].Operations["get"]
	assert.Equal(t, "#/components/schemas/Pet", show.Responses["200"].Ref, "shared response is dereferenced")
	assert.Equal(t, "string", show.Parameters[0].Type)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: "   "},
		{name: "broken json", data: `{"swagger": "2.0",`},
		{name: "json array", data: `[1, 2]`},
		{name: "yaml scalar", data: "just text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), WithSourceName("remote"))
			require.Error(t, err)
			assert.ErrorIs(t, err, ponterrors.ErrParse)
			assert.Contains(t, err.Error(), "remote")
		})
	}

	_, err := ParseFile("../testdata/missing.json")
	assert.ErrorIs(t, err, ponterrors.ErrParse)
}

func TestParseDialectOverride(t *testing.T) {
	data := []byte(`{"definitions": {"A": {"type": "object"}}}`)
	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, DialectSwaggerV2, doc.Dialect)

	doc, err = Parse(data, WithDialect(DialectOpenAPIV3))
	require.NoError(t, err)
	assert.Equal(t, DialectOpenAPIV3, doc.Dialect)
	assert.Empty(t, doc.Definitions)

	_, err = Parse(data, WithDialect(Dialect(9)))
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("\n  {\"a\":1}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("swagger: '2.0'")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent(nil))
	assert.True(t, IsURL("https://petstore.swagger.io/v2/swagger.json"))
	assert.False(t, IsURL("./swagger.json"))
}

func TestDecodeSchemaTypeArray(t *testing.T) {
	s := decodeSchema(map[string]any{"type": []any{"null", "string"}})
	assert.Equal(t, "string", s.Type)
}

func TestDetectFormatRejectsMarkup(t *testing.T) {
	assert.Equal(t, SourceFormatUnknown, DetectFormat([]byte("\n<!DOCTYPE html><html></html>")))
	assert.Equal(t, SourceFormatJSON, DetectFormat([]byte(`{"swagger":"2.0"}`)))
}

func TestParseYAMLUnquotedStatusCodes(t *testing.T) {
	doc, err := Parse([]byte(`swagger: "2.0"
definitions:
  Pet:
    type: object
paths:
  /pets/{id}:
    get:
      tags: [pet]
      responses:
        200:
          schema:
            $ref: '#/definitions/Pet'
`))
	require.NoError(t, err)

	op := doc.Paths["/pets/{id}"].Operations["get"]
	require.NotNil(t, op)
	require.Contains(t, op.Responses, "200")
	assert.Equal(t, "#/definitions/Pet", op.Responses["200"].Ref)
}

func TestStringKeys(t *testing.T) {
	in := map[string]any{
		"responses": map[any]any{200: map[any]any{"description": "ok"}},
		"list":      []any{map[any]any{true: 1}},
	}
	assert.Equal(t, map[string]any{
		"responses": map[string]any{"200": map[string]any{"description": "ok"}},
		"list":      []any{map[string]any{"true": 1}},
	}, stringKeys(in))
}
