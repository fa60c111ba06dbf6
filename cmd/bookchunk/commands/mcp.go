// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Lets LLM agents chunk and analyze books via stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/harper/bookchunk/internal/llm"
	"github.com/harper/bookchunk/internal/mcp"
)

// ServerName identifies the MCP server to clients
const ServerName = "bookchunk"

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs bookchunk as an MCP (Model Context Protocol) server over stdio,
exposing chunk_book, analyze_run and list_runs as tools. analyze_run
needs GEMINI_API_KEY; the other tools work without it.

Logs go to stderr; stdout carries the protocol.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  bookchunk mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "bookchunk": {
  #       "command": "bookchunk",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	var submitter llm.Submitter
	if err := e.cfg.RequireAPIKey(); err != nil {
		e.logger.Warn("GEMINI_API_KEY not set, analyze_run will fail")
	} else {
		client, err := llm.NewOpenAIClientWithConfig(llm.ConfigFrom(e.cfg))
		if err != nil {
			return err
		}
		submitter = client
	}

	server := mcpserver.NewMCPServer(ServerName, buildInfo.Version)
	mcp.RegisterTools(server, e.store, submitter, e.logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e.logger.Info("MCP server starting on stdio", "root", e.store.Root())

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		e.logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
