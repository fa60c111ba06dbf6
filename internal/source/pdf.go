// ABOUTME: PDF loader extracting plain text page by page
// ABOUTME: Each non-empty page becomes a blank-line separated block
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/harper/bookchunk/internal/models"
)

// PDFLoader extracts plain text page by page; pages are separated by a blank line
type PDFLoader struct{}

func (PDFLoader) Name() string { return "pdf" }

func (PDFLoader) Load(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", models.ErrInputNotFound, path)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading page %d of %s: %w", i, path, err)
		}
		if content = strings.TrimSpace(content); content != "" {
			pages = append(pages, content)
		}
	}
	return strings.Join(pages, models.ParagraphSeparator), nil
}
