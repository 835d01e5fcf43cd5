package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	deckhandmcp "github.com/gorewood/deckhand/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	var sourceFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run deckhand as a Model Context Protocol (MCP) server over stdio.

This exposes the export operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "deckhand": {
        "command": "deckhand",
        "args": ["serve", "--source", "./docs"]
      }
    }
  }

Available tools: status, cards, boards, export`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := deckhandmcp.NewServer(buildVersion(), sourceFlag)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().StringVar(&sourceFlag, "source", ".", "Documentation source directory")

	return cmd
}
