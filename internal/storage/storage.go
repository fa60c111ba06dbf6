// ABOUTME: Result storage for chunk runs and their analyses
// ABOUTME: Handles the XDG data root, run numbering and JSON persistence
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/xdg"

	"github.com/harper/bookchunk/internal/core"
	"github.com/harper/bookchunk/internal/models"
)

const (
	// ChunkDirName holds one directory of numbered chunk runs per book
	ChunkDirName = "chunked_results"
	// AnalysisDirName mirrors ChunkDirName for analysis output
	AnalysisDirName = "analysis_results"
	// BooksDirName is searched for input files given by relative name
	BooksDirName = "books"

	fileExt = ".json"
)

// Storage lays out run files under a single data root
type Storage struct {
	root string
}

// RunInfo summarizes one chunk run of a book
type RunInfo struct {
	Run        int    `json:"run" yaml:"run"`
	Chunks     int    `json:"chunks" yaml:"chunks"`
	Words      int    `json:"words" yaml:"words"`
	Analyzed   bool   `json:"analyzed" yaml:"analyzed"`
	Unreadable bool   `json:"unreadable,omitempty" yaml:"unreadable,omitempty"`
	Path       string `json:"path" yaml:"path"`
}

// BookInfo summarizes the runs stored for a book
type BookInfo struct {
	Book string `json:"book" yaml:"book"`
	Runs int    `json:"runs" yaml:"runs"`
}

// DefaultRoot returns the XDG data directory for bookchunk.
// XDG_DATA_HOME is read at call time so tests can override it.
func DefaultRoot() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "bookchunk")
}

// NewStorage returns storage rooted at root, or DefaultRoot when root is empty.
// Nothing is created on disk until a write happens.
func NewStorage(root string) (*Storage, error) {
	if root == "" {
		root = DefaultRoot()
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving data root %s: %w", root, err)
	}
	return &Storage{root: abs}, nil
}

// Root returns the absolute data root
func (s *Storage) Root() string {
	return s.root
}

// BookName derives a book name from an input filename: base name without extension
func BookName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ValidateBookName rejects names that would escape the book directory
func ValidateBookName(book string) error {
	if book == "" || book == "." || book == ".." {
		return fmt.Errorf("invalid book name %q", book)
	}
	if strings.ContainsAny(book, `/\`) {
		return fmt.Errorf("book name %q must not contain path separators", book)
	}
	return nil
}

// ChunkPath returns the chunk file path for a book run
func (s *Storage) ChunkPath(book string, run int) string {
	return filepath.Join(s.root, ChunkDirName, book, strconv.Itoa(run)+fileExt)
}

// AnalysisPath returns the analysis file path mirroring ChunkPath
func (s *Storage) AnalysisPath(book string, run int) string {
	return filepath.Join(s.root, AnalysisDirName, book, strconv.Itoa(run)+fileExt)
}

// NextChunkRun returns the next free run number for a book. A book with no
// directory yet starts at 0.
func (s *Storage) NextChunkRun(book string) (int, error) {
	names, err := jsonFiles(filepath.Join(s.root, ChunkDirName, book))
	if err != nil {
		return 0, err
	}
	return core.NextID(names), nil
}

// ResolveInput finds an input file: the name as given, or under the books
// directory of the data root when the name is relative and not found.
func (s *Storage) ResolveInput(filename string) (string, error) {
	candidates := []string{filename}
	if !filepath.IsAbs(filename) {
		candidates = append(candidates, filepath.Join(s.root, BooksDirName, filename))
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", models.ErrInputNotFound, filename)
}

// ReadChunkFile returns the raw bytes of a chunk run
func (s *Storage) ReadChunkFile(book string, run int) ([]byte, error) {
	path := s.ChunkPath(book, run)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", models.ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// WriteJSON writes v as an indented JSON document, creating parent directories.
// An existing file at path is overwritten. The write is not atomic.
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: encoding %s: %v", models.ErrWrite, path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: creating directory for %s: %v", models.ErrWrite, path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", models.ErrWrite, err)
	}
	return nil
}

// ListBooks returns every book with at least one chunk run, sorted by name
func (s *Storage) ListBooks() ([]BookInfo, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, ChunkDirName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}

	var books []BookInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		runs, err := s.runNumbers(entry.Name())
		if err != nil {
			return nil, err
		}
		if len(runs) == 0 {
			continue
		}
		books = append(books, BookInfo{Book: entry.Name(), Runs: len(runs)})
	}
	return books, nil
}

// ListRuns summarizes every numbered chunk run of a book in run order
func (s *Storage) ListRuns(book string) ([]RunInfo, error) {
	if err := ValidateBookName(book); err != nil {
		return nil, err
	}
	runs, err := s.runNumbers(book)
	if err != nil {
		return nil, err
	}

	infos := make([]RunInfo, 0, len(runs))
	for _, run := range runs {
		info := RunInfo{Run: run, Path: s.ChunkPath(book, run)}

		var chunks []models.Chunk
		data, err := os.ReadFile(info.Path)
		if err != nil || json.Unmarshal(data, &chunks) != nil {
			info.Unreadable = true
		} else {
			info.Chunks = len(chunks)
			for _, c := range chunks {
				info.Words += c.WordCount
			}
		}

		if _, err := os.Stat(s.AnalysisPath(book, run)); err == nil {
			info.Analyzed = true
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func (s *Storage) runNumbers(book string) ([]int, error) {
	names, err := jsonFiles(filepath.Join(s.root, ChunkDirName, book))
	if err != nil {
		return nil, err
	}

	var runs []int
	for _, name := range names {
		n, err := strconv.Atoi(strings.TrimSuffix(name, fileExt))
		if err != nil || n < 0 {
			continue
		}
		runs = append(runs, n)
	}
	slices.Sort(runs)
	return runs, nil
}

// jsonFiles lists *.json file names in dir; a missing dir is empty
func jsonFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != fileExt {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
