// ABOUTME: Loads book text from disk, picking a loader by file extension
// ABOUTME: Every loader returns text whose paragraphs are separated by blank lines
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/bookchunk/internal/models"
)

// Loader turns a file into paragraph-separated text
type Loader interface {
	Load(path string) (string, error)
	Name() string
}

// ForPath returns the loader for a file's extension; unknown extensions are read as plain text
func ForPath(path string) Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return MarkdownLoader{}
	case ".pdf":
		return PDFLoader{}
	default:
		return TextLoader{}
	}
}

// Load reads path with the loader chosen by ForPath
func Load(path string) (string, error) {
	return ForPath(path).Load(path)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", models.ErrInputNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// TextLoader reads UTF-8 text as is
type TextLoader struct{}

func (TextLoader) Name() string { return "text" }

func (TextLoader) Load(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
