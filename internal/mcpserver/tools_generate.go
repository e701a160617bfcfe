package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Saber-Kurama/learn-pont/generator"
	"github.com/Saber-Kurama/learn-pont/standard"
	"github.com/Saber-Kurama/learn-pont/syncer"
)

type generateInput struct {
	Spec        docInput `json:"spec"                  jsonschema:"The Swagger/OpenAPI document to generate from"`
	Dialect     string   `json:"dialect,omitempty"     jsonschema:"Force the reference layout: SwaggerV2 or SwaggerV3. Detected when omitted"`
	OriginName  string   `json:"origin_name,omitempty" jsonschema:"Nest the output under this origin"`
	PathNames   bool     `json:"path_names,omitempty"  jsonschema:"Name interfaces from their paths instead of operationIds"`
	Surrounding string   `json:"surrounding,omitempty" jsonschema:"typeScript (default) or javaScript"`
	Template    string   `json:"template,omitempty"    jsonschema:"Registered template name: default or single-file"`
	Contents    bool     `json:"contents,omitempty"    jsonschema:"Include file contents"`
	OutputDir   string   `json:"output_dir,omitempty"  jsonschema:"Write the tree to this directory, rewriting only changed files"`
	Offset      int      `json:"offset,omitempty"      jsonschema:"Skip the first N files"`
	Limit       int      `json:"limit,omitempty"       jsonschema:"Maximum files to return (default 100)"`
}

type generatedFile struct {
	Path    string `json:"path"`
	Size    int    `json:"size"`
	Content string `json:"content,omitempty"`
}

type generateOutput struct {
	Total     int             `json:"total"`
	Returned  int             `json:"returned"`
	Files     []generatedFile `json:"files"`
	Tree      string          `json:"tree"`
	Written   []string        `json:"written,omitempty"`
	Unchanged int             `json:"unchanged,omitempty"`
}

func handleGenerate(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	ds, _, err := transformInput{
		Spec:       input.Spec,
		Dialect:    input.Dialect,
		OriginName: input.OriginName,
		PathNames:  input.PathNames,
	}.load(ctx)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts := []generator.Option{generator.WithTemplate(input.Template)}
	if input.Surrounding != "" {
		opts = append(opts, generator.WithSurrounding(generator.Surrounding(input.Surrounding)))
	}
	if ds.Name != "" {
		opts = append(opts, generator.WithMultipleOrigins(true))
	}
	gen, err := generator.New([]*standard.DataSource{ds}, opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	tree := gen.Files()

	var files []generatedFile
	err = tree.Walk(func(path string, n syncer.Node) error {
		content, err := syncer.Content(n)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}
		f := generatedFile{Path: path, Size: len(content)}
		if input.Contents {
			f.Content = content
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	page := paginate(files, input.Offset, input.Limit)
	output := generateOutput{
		Total:    len(files),
		Returned: len(page),
		Files:    page,
		Tree:     syncer.Print(".", tree),
	}

	if input.OutputDir != "" {
		s, err := syncer.New()
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		report, err := s.Sync(ctx, input.OutputDir, tree)
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		output.Written = report.Written
		output.Unchanged = len(report.Unchanged)
	}
	return nil, output, nil
}
