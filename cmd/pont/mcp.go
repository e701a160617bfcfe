package main

import (
	"github.com/urfave/cli/v2"

	"github.com/Saber-Kurama/learn-pont/internal/mcpserver"
)

var cmdMCP = &cli.Command{
	Name:  "mcp",
	Usage: "serve the pont MCP tools over stdio",
	Action: func(cctx *cli.Context) error {
		return mcpserver.Run(cctx.Context)
	},
}
