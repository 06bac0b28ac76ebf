// Package mcpserver exposes the registered skills over the Model Context
// Protocol on stdio, so MCP-capable clients can call the same tools the CLI
// offers.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/The-Smol-Lab/skills/internal/tool"
)

// New builds an MCP server publishing every tool in the registry.
func New(name, version string, reg *tool.Registry) *server.MCPServer {
	srv := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
	)

	for _, t := range reg.List() {
		srv.AddTool(
			mcp.NewToolWithRawSchema(t.Name(), t.Description(), t.InputSchema()),
			handlerFor(t),
		)
	}
	return srv
}

// handlerFor adapts a tool.Tool to an MCP tool handler. Expected skill
// failures become MCP error results; a non-nil Go error propagates to the
// protocol layer as an internal error.
func handlerFor(t tool.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(req.GetArguments())
		if err != nil {
			return nil, fmt.Errorf("mcpserver: encode arguments for %s: %w", t.Name(), err)
		}

		res, err := t.Execute(ctx, args)
		if err != nil {
			return nil, err
		}
		if res.Error != "" {
			return mcp.NewToolResultError(res.Error), nil
		}
		return mcp.NewToolResultText(res.Output), nil
	}
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
// Logging goes to stderr, keeping stdout clean for the protocol stream.
func ServeStdio(reg *tool.Registry, name, version string) error {
	log.Printf("[MCP] Serving %d tools on stdio", len(reg.List()))
	return server.ServeStdio(New(name, version, reg))
}
