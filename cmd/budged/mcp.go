package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/serikbay/budged/internal/mcpserver"
)

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server over stdio",
		Long: `Serve statement parsing and spending analytics over the Model Context
Protocol. MCP-capable chat clients connect via stdin/stdout; all
diagnostics go to stderr.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			slog.Info("starting MCP server", "version", version)
			return mcpserver.New(version).ServeStdio()
		},
	}
}
