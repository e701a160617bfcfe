package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Saber-Kurama/learn-pont/standard"
	"github.com/Saber-Kurama/learn-pont/transformer"
)

type transformInput struct {
	Spec       docInput `json:"spec"                  jsonschema:"The Swagger/OpenAPI document to transform"`
	Dialect    string   `json:"dialect,omitempty"     jsonschema:"Force the reference layout: SwaggerV2 or SwaggerV3. Detected when omitted"`
	OriginName string   `json:"origin_name,omitempty" jsonschema:"Origin name stored on the model"`
	PathNames  bool     `json:"path_names,omitempty"  jsonschema:"Name interfaces from their paths instead of operationIds"`
	Full       bool     `json:"full,omitempty"        jsonschema:"Include the complete model JSON"`
}

type classSummary struct {
	Name       string `json:"name"`
	Generic    bool   `json:"generic,omitempty"`
	Properties int    `json:"properties"`
}

type interfaceSummary struct {
	Name     string `json:"name"`
	Method   string `json:"method"`
	Path     string `json:"path"`
	Response string `json:"response"`
}

type modSummary struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Interfaces  []interfaceSummary `json:"interfaces"`
}

type transformOutput struct {
	Dialect        string         `json:"dialect"`
	ClassCount     int            `json:"class_count"`
	ModCount       int            `json:"mod_count"`
	InterfaceCount int            `json:"interface_count"`
	Classes        []classSummary `json:"classes,omitempty"`
	Mods           []modSummary   `json:"mods,omitempty"`
	Model          string         `json:"model,omitempty"`
}

func (in transformInput) load(ctx context.Context) (*standard.DataSource, string, error) {
	dialect, err := parseDialect(in.Dialect)
	if err != nil {
		return nil, "", err
	}
	doc, err := in.Spec.resolve(ctx, dialect)
	if err != nil {
		return nil, "", err
	}
	if in.OriginName != "" && !standard.IsIdentifier(in.OriginName) {
		return nil, "", fmt.Errorf("origin_name %q is not an identifier", in.OriginName)
	}
	ds, err := transformer.Transform(doc,
		transformer.WithOriginName(in.OriginName),
		transformer.WithUsingOperationID(!in.PathNames),
		transformer.WithCompiler(sharedCompiler),
	)
	if err != nil {
		return nil, "", err
	}
	return ds, doc.Dialect.String(), nil
}

func handleTransform(ctx context.Context, _ *mcp.CallToolRequest, input transformInput) (*mcp.CallToolResult, transformOutput, error) {
	ds, dialect, err := input.load(ctx)
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}

	output := transformOutput{
		Dialect:        dialect,
		ClassCount:     len(ds.BaseClasses),
		ModCount:       len(ds.Mods),
		InterfaceCount: len(ds.Interfaces()),
	}
	for _, c := range ds.BaseClasses {
		output.Classes = append(output.Classes, classSummary{
			Name:       c.Name,
			Generic:    len(c.TemplateArgs) > 0,
			Properties: len(c.Properties),
		})
	}
	for _, m := range ds.Mods {
		ms := modSummary{Name: m.Name, Description: m.Description}
		for _, inter := range m.Interfaces {
			ms.Interfaces = append(ms.Interfaces, interfaceSummary{
				Name:     inter.Name,
				Method:   inter.Method,
				Path:     inter.Path,
				Response: inter.Response.Code(ds.Name),
			})
		}
		output.Mods = append(output.Mods, ms)
	}

	if input.Full {
		data, err := json.MarshalIndent(ds, "", "  ")
		if err != nil {
			return errResult(err), transformOutput{}, nil
		}
		output.Model = string(data)
	}
	return nil, output, nil
}
