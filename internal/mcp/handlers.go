// ABOUTME: MCP tool handler implementations for the bookchunk server
// ABOUTME: Each handler reports failures as tool errors rather than protocol errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/bookchunk/internal/models"
	"github.com/harper/bookchunk/internal/pipeline"
	"github.com/harper/bookchunk/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store    *storage.Storage
	chunker  *pipeline.Chunker
	analyzer *pipeline.Analyzer // nil without a credential
}

// ChunkBook handles the chunk_book tool
func (h *Handlers) ChunkBook(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filename, err := request.RequireString("filename")
	if err != nil {
		return mcp.NewToolResultError("filename argument is required and must be a string"), nil
	}
	age, err := requireWhole(request, "age")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target := 0
	if _, ok := request.GetArguments()["target_words"]; ok {
		if target, err = requireWhole(request, "target_words"); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if target <= 0 {
			return mcp.NewToolResultError("target_words must be positive"), nil
		}
	}

	result, err := h.chunker.Run(ctx, pipeline.ChunkRequest{Filename: filename, Age: age, Target: target})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chunking failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"book":         result.Book,
		"run":          result.Run,
		"path":         result.Path,
		"target_words": result.Target,
		"paragraphs":   result.Paragraphs,
		"chunks":       len(result.Chunks),
		"words":        result.Words,
	})
}

// AnalyzeRun handles the analyze_run tool
func (h *Handlers) AnalyzeRun(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.analyzer == nil {
		return mcp.NewToolResultError(fmt.Sprintf("%v: GEMINI_API_KEY is not set", models.ErrMissingCredential)), nil
	}

	book, err := request.RequireString("book")
	if err != nil {
		return mcp.NewToolResultError("book argument is required and must be a string"), nil
	}
	run, err := requireWhole(request, "run")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := h.analyzer.Run(ctx, pipeline.AnalyzeRequest{Book: book, Run: run})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"book":       result.Book,
		"run":        result.Run,
		"path":       result.Path,
		"paragraphs": result.Paragraphs,
		"results":    result.Records,
	})
}

// ListRuns handles the list_runs tool
func (h *Handlers) ListRuns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	book := request.GetString("book", "")

	if book == "" {
		books, err := h.store.ListBooks()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list books: %v", err)), nil
		}
		if books == nil {
			books = []storage.BookInfo{}
		}
		return jsonResult(map[string]interface{}{
			"root":  h.store.Root(),
			"books": books,
		})
	}

	runs, err := h.store.ListRuns(book)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list runs: %v", err)), nil
	}
	return jsonResult(map[string]interface{}{
		"book": book,
		"runs": runs,
	})
}

// requireWhole reads a required numeric argument and rejects fractional values,
// matching the CLI's integer parsing
func requireWhole(request mcp.CallToolRequest, key string) (int, error) {
	v, err := request.RequireFloat(key)
	if err != nil {
		return 0, fmt.Errorf("%s argument is required and must be a number", key)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%s must be a whole number, got %v", key, v)
	}
	return int(v), nil
}

func jsonResult(response interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
