// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes pont's transformer, generator and reference compiler as MCP
// tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	pont "github.com/Saber-Kurama/learn-pont"
	"github.com/Saber-Kurama/learn-pont/compiler"
)

const serverInstructions = `pont MCP server: turns Swagger 2.0 and OpenAPI 3 documents into TypeScript API client declarations.

Tools:
- pont_transform: summarize the classes and modules a document produces
- pont_generate: render the generated file tree, optionally writing it to disk
- pont_compile: parse and render a single type reference such as #/definitions/Result«Page«User»»

Configuration: defaults are read from PONT_MCP_* environment variables set in your MCP client config.
- PONT_MCP_CACHE_ENABLED (default: true): cache parsed documents per session
- PONT_MCP_CACHE_URL_TTL (default: 5m), PONT_MCP_CACHE_CONTENT_TTL (default: 15m)
- PONT_MCP_FILE_LIMIT (default: 100): files listed per pont_generate page
- PONT_MCP_ALLOW_PRIVATE_IPS (default: false): allow url inputs on internal networks`

// sharedCompiler caches parsed references across tool calls.
var sharedCompiler = compiler.New(0)

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "pont", Version: pont.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "pont_transform",
		Description: "Transform a Swagger 2.0 or OpenAPI 3 document into pont's standard model. Returns the detected dialect, class and module counts, generic classes, and each module's interfaces (method, path, name). Use full=true to include the complete model JSON, which is what api-lock.json records.",
	}, handleTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pont_generate",
		Description: "Generate the TypeScript API client tree for a document. Returns the file list and a tree rendering; set contents=true to include file contents (paginate with offset/limit). Set output_dir to write the tree to disk; only changed files are rewritten and the report lists written and unchanged paths.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pont_compile",
		Description: "Compile a single type reference (e.g. #/definitions/Result«Page«User»» or Map<string,List<Pet>>) into its AST and rendered TypeScript type. Names listed in definitions render as defs classes; others map to built-in types.",
	}, handleCompile)
}

// paginate applies offset/limit pagination to a slice. A non-positive limit
// defaults to cfg.FileLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.FileLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
