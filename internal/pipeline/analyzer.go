// ABOUTME: The analysis stage: a chunk run to per-paragraph annotations on disk
// ABOUTME: Every inbound and outbound document is validated before anything is written
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/harper/bookchunk/internal/core"
	"github.com/harper/bookchunk/internal/llm"
	"github.com/harper/bookchunk/internal/logging"
	"github.com/harper/bookchunk/internal/models"
	"github.com/harper/bookchunk/internal/storage"
)

// AnalyzeRequest names the chunk run to annotate
type AnalyzeRequest struct {
	Book string
	Run  int
}

// AnalyzeResult reports what an analysis run wrote
type AnalyzeResult struct {
	Book       string                  `json:"book" yaml:"book"`
	Run        int                     `json:"run" yaml:"run"`
	Path       string                  `json:"path" yaml:"path"`
	Paragraphs int                     `json:"paragraphs" yaml:"paragraphs"`
	Records    []models.AnalysisRecord `json:"-" yaml:"-"`
}

// Analyzer submits a chunk run for annotation in a single request
type Analyzer struct {
	store     *storage.Storage
	submitter llm.Submitter
	logger    *log.Logger
}

// NewAnalyzer creates an analysis stage; a nil logger discards output
func NewAnalyzer(store *storage.Storage, submitter llm.Submitter, logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Analyzer{store: store, submitter: submitter, logger: logger}
}

// Run reads the chunk file, asks for annotations and writes the analysis file
func (a *Analyzer) Run(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	logger := a.logger.With("trace", newTrace(), "stage", "analyze", "book", req.Book, "run", req.Run)

	if err := storage.ValidateBookName(req.Book); err != nil {
		return nil, err
	}
	if req.Run < 0 {
		return nil, fmt.Errorf("run number must not be negative, got %d", req.Run)
	}

	data, err := a.store.ReadChunkFile(req.Book, req.Run)
	if err != nil {
		logger.Error("chunk file unavailable", "err", err)
		return nil, err
	}

	paragraphs, err := core.ValidateParagraphs(data)
	if err != nil {
		logValidation(logger, "chunk file failed validation", err)
		return nil, err
	}
	if len(paragraphs) == 0 {
		logger.Error("chunk file has no paragraphs")
		return nil, fmt.Errorf("%w: chunk run %s/%d is empty", models.ErrEmptyResult, req.Book, req.Run)
	}
	logger.Debug("loaded paragraphs", "paragraphs", len(paragraphs))

	prompt := core.BuildAnalysisPrompt(paragraphs)
	logger.Debug("submitting analysis request", "prompt_bytes", len(prompt))
	raw, err := a.submitter.Submit(ctx, prompt)
	if err != nil {
		logger.Error("analysis request failed", "err", err)
		return nil, err
	}

	records, err := core.ValidateAnalysis([]byte(raw))
	if err != nil {
		logValidation(logger, "analysis response failed validation", err)
		return nil, err
	}
	if len(records) == 0 {
		logger.Error("analysis response has no results")
		return nil, fmt.Errorf("%w: no analysis results for %s/%d", models.ErrEmptyResult, req.Book, req.Run)
	}
	warnCoverage(logger, paragraphs, records)

	outPath := a.store.AnalysisPath(req.Book, req.Run)
	if err := storage.WriteJSON(outPath, records); err != nil {
		logger.Error("writing analysis failed", "path", outPath, "err", err)
		return nil, err
	}
	logger.Info("wrote analysis", "records", len(records), "path", outPath)

	return &AnalyzeResult{
		Book:       req.Book,
		Run:        req.Run,
		Path:       outPath,
		Paragraphs: len(paragraphs),
		Records:    records,
	}, nil
}

func logValidation(logger *log.Logger, msg string, err error) {
	var verr *core.ValidationError
	if !errors.As(err, &verr) {
		logger.Error(msg, "err", err)
		return
	}
	logger.Error(msg, "record", verr.Record, "issues", len(verr.Issues))
	for _, issue := range verr.Issues {
		logger.Error("invalid element", "issue", issue.String())
	}
}

// warnCoverage logs annotations that do not line up with the submitted paragraphs.
// The response is still written as returned.
func warnCoverage(logger *log.Logger, paragraphs []models.ParagraphRecord, records []models.AnalysisRecord) {
	submitted := make(map[int]bool, len(paragraphs))
	for _, p := range paragraphs {
		submitted[p.ID] = false
	}
	for _, r := range records {
		if _, ok := submitted[r.ParagraphID]; !ok {
			logger.Warn("annotation for unknown paragraph", "paragraph_id", r.ParagraphID)
			continue
		}
		submitted[r.ParagraphID] = true
	}
	for _, p := range paragraphs {
		if !submitted[p.ID] {
			logger.Warn("paragraph left unannotated", "paragraph_id", p.ID)
		}
	}
}
