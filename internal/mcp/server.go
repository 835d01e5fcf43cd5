// Package mcp provides a Model Context Protocol server for deckhand.
// It exposes the documentation export operations as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all deckhand tools registered.
// Tools re-scan the documentation tree at source on every call, so edits
// on disk are always visible.
func NewServer(version string, source string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "deckhand",
		Version: version,
	}, nil)
	registerTools(server, source)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// exportAnnotations returns annotations for the export tool. The export
// overwrites records in place, so it is idempotent rather than destructive.
func exportAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all deckhand tools to the server.
func registerTools(server *mcp.Server, source string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Summarize the documentation tree: page and toctree counts plus the configuration in effect.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(source))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "cards",
		Description: "Preview the card records that an export would produce, one per non-index page, without writing anything.",
		Annotations: readOnlyAnnotations(),
	}, handleCards(source))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "boards",
		Description: "Preview the board and board-group records that an export would produce, without writing anything.",
		Annotations: readOnlyAnnotations(),
	}, handleBoards(source))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export",
		Description: "Run the full export: write card, board, board-group and collection records and package them into guru.zip.",
		Annotations: exportAnnotations(),
	}, handleExport(source))
}
