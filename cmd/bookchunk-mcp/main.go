// ABOUTME: Standalone bookchunk MCP server with stdio transport
// ABOUTME: Same tools as `bookchunk mcp`, for clients that launch a dedicated binary
package main

import (
	"os"

	"github.com/charmbracelet/log"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/bookchunk/internal/config"
	"github.com/harper/bookchunk/internal/llm"
	"github.com/harper/bookchunk/internal/logging"
	"github.com/harper/bookchunk/internal/mcp"
	"github.com/harper/bookchunk/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal("invalid log level", "err", err)
	}

	store, err := storage.NewStorage(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to initialize storage", "err", err)
	}

	var submitter llm.Submitter
	if cfg.RequireAPIKey() != nil {
		logger.Warn("GEMINI_API_KEY not set, analyze_run will fail")
	} else {
		client, err := llm.NewOpenAIClientWithConfig(llm.ConfigFrom(cfg))
		if err != nil {
			logger.Fatal("failed to initialize analysis client", "err", err)
		}
		submitter = client
	}

	server := mcpserver.NewMCPServer("bookchunk", "0.1.0")
	mcp.RegisterTools(server, store, submitter, logger)

	logger.Info("bookchunk MCP server starting on stdio", "root", store.Root())
	if err := mcpserver.ServeStdio(server); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
