package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Saber-Kurama/learn-pont/compiler"
)

type compileInput struct {
	Ref         string   `json:"ref"                    jsonschema:"Type reference, with or without the #/definitions/ or #/components/schemas/ prefix"`
	Dialect     string   `json:"dialect,omitempty"      jsonschema:"SwaggerV2 (default) or SwaggerV3; selects the prefix to strip"`
	Definitions []string `json:"definitions,omitempty"  jsonschema:"Names that resolve to defs classes"`
	Origin      string   `json:"origin,omitempty"       jsonschema:"Origin namespace for rendered defs types"`
}

type compileOutput struct {
	Name     string   `json:"name"`
	TypeArgs []string `json:"type_args,omitempty"`
	Type     string   `json:"type"`
	Rendered string   `json:"rendered"`
}

func handleCompile(_ context.Context, _ *mcp.CallToolRequest, input compileInput) (*mcp.CallToolResult, compileOutput, error) {
	d, err := parseDialect(input.Dialect)
	if err != nil {
		return errResult(err), compileOutput{}, nil
	}
	keyword := "#/definitions/"
	if d != nil {
		keyword = d.Keyword()
	}
	ast, err := sharedCompiler.Compile(input.Ref, keyword)
	if err != nil {
		return errResult(err), compileOutput{}, nil
	}
	dt := compiler.Resolve(ast, compiler.NewDefSet(input.Definitions...), nil)
	out := compileOutput{
		Name:     ast.Name,
		Type:     ast.String(),
		Rendered: dt.Code(input.Origin),
	}
	for _, arg := range ast.TypeArgs {
		out.TypeArgs = append(out.TypeArgs, arg.String())
	}
	return nil, out, nil
}
