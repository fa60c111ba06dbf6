// ABOUTME: MCP tool definitions and registration for the bookchunk server
// ABOUTME: Exposes chunking, analysis and run listing as stdio tools
package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/bookchunk/internal/llm"
	"github.com/harper/bookchunk/internal/logging"
	"github.com/harper/bookchunk/internal/pipeline"
	"github.com/harper/bookchunk/internal/storage"
)

// RegisterTools registers all MCP tools with the server. A nil submitter
// leaves analyze_run registered but failing with a credential error.
func RegisterTools(server *mcpserver.MCPServer, store *storage.Storage, submitter llm.Submitter, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = logging.Discard()
	}
	handlers := &Handlers{
		store:   store,
		chunker: pipeline.NewChunker(store, logger),
	}
	if submitter != nil {
		handlers.analyzer = pipeline.NewAnalyzer(store, submitter, logger)
	}

	// 1. chunk_book - split a book into paragraph-aligned chunks
	server.AddTool(mcp.Tool{
		Name:        "chunk_book",
		Description: "Split a book into paragraph-aligned chunks sized for a reader's age and store them as the next numbered run.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"filename": map[string]interface{}{
					"type":        "string",
					"description": "Path to a .txt, .md or .pdf file, or a name under the data root's books directory",
				},
				"age": map[string]interface{}{
					"type":        "number",
					"description": "Reader age in years; selects the target words per chunk",
				},
				"target_words": map[string]interface{}{
					"type":        "number",
					"description": "Optional explicit target words per chunk, overriding the age table",
				},
			},
			Required: []string{"filename", "age"},
		},
	}, handlers.ChunkBook)

	// 2. analyze_run - annotate every paragraph of a stored run
	server.AddTool(mcp.Tool{
		Name:        "analyze_run",
		Description: "Annotate every paragraph of a stored chunk run with mood, sentiment and type, and store the result alongside it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"book": map[string]interface{}{
					"type":        "string",
					"description": "Book name (input file name without extension)",
				},
				"run": map[string]interface{}{
					"type":        "number",
					"description": "Chunk run number to analyze",
				},
			},
			Required: []string{"book", "run"},
		},
	}, handlers.AnalyzeRun)

	// 3. list_runs - list books, or the runs of one book
	server.AddTool(mcp.Tool{
		Name:        "list_runs",
		Description: "List books with stored chunk runs, or the runs of a single book with chunk counts and analysis status.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"book": map[string]interface{}{
					"type":        "string",
					"description": "Optional book name; omit to list all books",
				},
			},
		},
	}, handlers.ListRuns)

	return handlers
}
