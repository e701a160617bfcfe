package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSwagger = `{
  "swagger": "2.0",
  "tags": [{"name": "user-controller", "description": "User Controller"}],
  "paths": {
    "/api/user/{id}": {
      "get": {
        "tags": ["user-controller"],
        "summary": "get user",
        "operationId": "getUserUsingGET",
        "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Result«User»"}}}
      }
    }
  },
  "definitions": {
    "User": {
      "type": "object",
      "description": "a user",
      "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}
    },
    "Result«User»": {
      "type": "object",
      "properties": {"data": {"$ref": "#/definitions/User"}, "code": {"type": "integer"}}
    }
  }
}`

func TestTransformTool(t *testing.T) {
	_, out, err := handleTransform(context.Background(), &mcp.CallToolRequest{}, transformInput{
		Spec: docInput{Content: testSwagger},
	})
	require.NoError(t, err)

	assert.Equal(t, "SwaggerV2", out.Dialect)
	assert.Equal(t, 2, out.ClassCount)
	assert.Equal(t, 1, out.ModCount)
	assert.Equal(t, 1, out.InterfaceCount)
	assert.Contains(t, out.Classes, classSummary{Name: "Result", Generic: true, Properties: 2})
	require.Len(t, out.Mods, 1)
	assert.Equal(t, "user", out.Mods[0].Name)
	assert.Equal(t, interfaceSummary{
		Name:     "getUser",
		Method:   "get",
		Path:     "/api/user/{id}",
		Response: "defs.Result<defs.User>",
	}, out.Mods[0].Interfaces[0])
	assert.Empty(t, out.Model)
}

func TestTransformTool_Full(t *testing.T) {
	_, out, err := handleTransform(context.Background(), &mcp.CallToolRequest{}, transformInput{
		Spec:       docInput{Content: testSwagger},
		OriginName: "users",
		Full:       true,
	})
	require.NoError(t, err)
	assert.Contains(t, out.Model, `"name": "users"`)
	assert.Equal(t, "defs.users.Result<defs.users.User>", out.Mods[0].Interfaces[0].Response)
}

func TestTransformTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input transformInput
	}{
		{"no document", transformInput{}},
		{"bad dialect", transformInput{Spec: docInput{Content: testSwagger}, Dialect: "raml"}},
		{"bad origin", transformInput{Spec: docInput{Content: testSwagger}, OriginName: "a-b"}},
		{"unparseable", transformInput{Spec: docInput{Content: "{not json"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := handleTransform(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.True(t, res.IsError)
		})
	}
}

func TestGenerateTool(t *testing.T) {
	_, out, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:     docInput{Content: testSwagger},
		Contents: true,
		Limit:    2,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, out.Total)
	assert.Equal(t, 2, out.Returned)
	assert.Equal(t, "api-lock.json", out.Files[0].Path)
	assert.Equal(t, "api.d.ts", out.Files[1].Path)
	assert.Contains(t, out.Files[1].Content, `/// <reference path="./mods/user.d.ts" />`)
	assert.Contains(t, out.Tree, "defs/")
	assert.Empty(t, out.Written)
}

func TestGenerateTool_WritesOutputDir(t *testing.T) {
	dir := t.TempDir()
	input := generateInput{Spec: docInput{Content: testSwagger}, OutputDir: dir}

	_, first, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Len(t, first.Written, first.Total)

	data, err := os.ReadFile(filepath.Join(dir, "defs", "User.d.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "export class User {")

	_, second, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Empty(t, second.Written)
	assert.Equal(t, second.Total, second.Unchanged)
}

func TestGenerateTool_UnknownTemplate(t *testing.T) {
	res, _, err := handleGenerate(context.Background(), &mcp.CallToolRequest{}, generateInput{
		Spec:     docInput{Content: testSwagger},
		Template: "handlebars",
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestCompileTool(t *testing.T) {
	tests := []struct {
		name     string
		input    compileInput
		typ      string
		rendered string
	}{
		{
			name:     "generic defs",
			input:    compileInput{Ref: "#/definitions/Result«Page«User»»", Definitions: []string{"Result", "Page", "User"}},
			typ:      "Result<Page<User>>",
			rendered: "defs.Result<defs.Page<defs.User>>",
		},
		{
			name:     "builtin containers",
			input:    compileInput{Ref: "Map<string,List<Pet>>", Definitions: []string{"Pet"}},
			typ:      "Map<string, List<Pet>>",
			rendered: "ObjectMap<string, Array<defs.Pet>>",
		},
		{
			name:     "openapi3 prefix with origin",
			input:    compileInput{Ref: "#/components/schemas/Pet", Dialect: "SwaggerV3", Definitions: []string{"Pet"}, Origin: "store"},
			typ:      "Pet",
			rendered: "defs.store.Pet",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, out, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.Nil(t, res)
			assert.Equal(t, tt.typ, out.Type)
			assert.NotEmpty(t, out.Name)
			assert.Equal(t, tt.rendered, out.Rendered)
		})
	}
}

func TestCompileTool_SyntaxError(t *testing.T) {
	res, _, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, compileInput{Ref: "#/definitions/Page«User"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
