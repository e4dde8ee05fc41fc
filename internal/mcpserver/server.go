// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes tspgen capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/tspgen"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `tspgen MCP server — generates SDK clients from TypeSpec code-model documents and inspects their structure.

Configuration: All defaults are configurable via TSPGEN_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- TSPGEN_PACKAGE_NAME (default: api) — default Go package name for generated code
- TSPGEN_MODELS_MODE (default: dpg) — default model emission mode (dpg, msrest, none)
- TSPGEN_MODULE_VERSION (default: 0.1.0) — default version stamped into generated modules
- TSPGEN_STRICT (default: false) — treat generation warnings as failures by default

Workflow: Use inspect first to see what a code model contains (clients, operation groups, operations, paging and long-running operations, type counts). Then use generate with an output_dir to emit the SDK.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "tspgen", Version: tspgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect a TypeSpec code-model document. Returns a structural summary: namespace, clients, operation groups, operations with their kinds (operation, paging, lro, lropaging), and model/enum counts. Use this before generate to understand what an SDK will contain.",
	}, handleInspect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate a Go SDK from a TypeSpec code-model document. Requires output_dir. Optional: module_name (emits go.mod), package_name, models_mode (dpg, msrest, none), azure_arm, samples, tests. Returns a manifest of generated files plus model/operation counts and any generation issues. Defaults are configurable via TSPGEN_* env vars.",
	}, handleGenerate)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
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
