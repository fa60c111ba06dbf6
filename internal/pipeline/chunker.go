// ABOUTME: The chunking stage: input file to a numbered chunk run on disk
// ABOUTME: Fails closed, writing nothing when any step produces no result
package pipeline

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/harper/bookchunk/internal/core"
	"github.com/harper/bookchunk/internal/logging"
	"github.com/harper/bookchunk/internal/models"
	"github.com/harper/bookchunk/internal/source"
	"github.com/harper/bookchunk/internal/storage"
)

// ChunkRequest describes one chunking run
type ChunkRequest struct {
	Filename string
	Age      int
	// Target overrides the age-derived chunk size when positive
	Target int
}

// ChunkResult reports what a chunking run wrote
type ChunkResult struct {
	Book       string         `json:"book" yaml:"book"`
	Run        int            `json:"run" yaml:"run"`
	Path       string         `json:"path" yaml:"path"`
	Target     int            `json:"target_words" yaml:"target_words"`
	Paragraphs int            `json:"paragraphs" yaml:"paragraphs"`
	Words      int            `json:"words" yaml:"words"`
	Chunks     []models.Chunk `json:"-" yaml:"-"`
}

// Chunker runs segmentation and greedy assembly against stored input
type Chunker struct {
	store  *storage.Storage
	logger *log.Logger
}

// NewChunker creates a chunking stage; a nil logger discards output
func NewChunker(store *storage.Storage, logger *log.Logger) *Chunker {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Chunker{store: store, logger: logger}
}

// Run loads the input, chunks it and writes the next run for the book
func (c *Chunker) Run(ctx context.Context, req ChunkRequest) (*ChunkResult, error) {
	logger := c.logger.With("trace", newTrace(), "stage", "chunk")

	book := storage.BookName(req.Filename)
	if err := storage.ValidateBookName(book); err != nil {
		return nil, err
	}

	path, err := c.store.ResolveInput(req.Filename)
	if err != nil {
		logger.Error("input not found", "file", req.Filename, "err", err)
		return nil, err
	}

	loader := source.ForPath(path)
	logger.Debug("loading input", "path", path, "loader", loader.Name())
	text, err := loader.Load(path)
	if err != nil {
		logger.Error("loading input failed", "path", path, "err", err)
		return nil, err
	}

	paragraphs := core.Segment(text)
	logger.Debug("segmented input", "paragraphs", len(paragraphs))
	if len(paragraphs) == 0 {
		logger.Error("input has no paragraphs", "path", path)
		return nil, fmt.Errorf("%w: no paragraphs in %s", models.ErrEmptyResult, path)
	}

	target := req.Target
	if target <= 0 {
		target = core.ResolveTargetSize(req.Age)
	}

	chunks := core.Assemble(paragraphs, target)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no chunks assembled from %s", models.ErrEmptyResult, path)
	}
	logger.Debug("assembled chunks", "chunks", len(chunks), "target", target)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	run, err := c.store.NextChunkRun(book)
	if err != nil {
		return nil, err
	}
	outPath := c.store.ChunkPath(book, run)
	if err := storage.WriteJSON(outPath, chunks); err != nil {
		logger.Error("writing chunks failed", "path", outPath, "err", err)
		return nil, err
	}

	words := 0
	for _, chunk := range chunks {
		words += chunk.WordCount
	}
	logger.Info("wrote chunk run", "book", book, "run", run, "chunks", len(chunks), "path", outPath)

	return &ChunkResult{
		Book:       book,
		Run:        run,
		Path:       outPath,
		Target:     target,
		Paragraphs: len(paragraphs),
		Words:      words,
		Chunks:     chunks,
	}, nil
}

func newTrace() string {
	return uuid.NewString()[:8]
}
