// ABOUTME: Tests for extension-based loader selection and text extraction

package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/bookchunk/internal/core"
	"github.com/harper/bookchunk/internal/models"
)

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"book.txt", "text"},
		{"book.TEXT", "text"},
		{"book", "text"},
		{"book.epub", "text"},
		{"book.md", "markdown"},
		{"BOOK.Markdown", "markdown"},
		{"book.pdf", "pdf"},
	}

	for _, tt := range tests {
		if got := ForPath(tt.path).Name(); got != tt.want {
			t.Errorf("ForPath(%q).Name() = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestTextLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.txt")
	if err := os.WriteFile(path, []byte("One.\n\nTwo."), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "One.\n\nTwo." {
		t.Errorf("Load() = %q", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"missing.txt", "missing.md", "missing.pdf"} {
		_, err := Load(filepath.Join(dir, name))
		if !errors.Is(err, models.ErrInputNotFound) {
			t.Errorf("Load(%s) error = %v, want ErrInputNotFound", name, err)
		}
	}
}

func TestMarkdownText(t *testing.T) {
	src := []byte(`# Chapter One

It was a *bright* cold day
in April.

---

- first item
- second item

> quoted line

Last paragraph.
`)

	got := MarkdownText(src)
	want := "Chapter One\n\nIt was a *bright* cold day\nin April.\n\nfirst item\nsecond item\n\nquoted line\n\nLast paragraph."
	if got != want {
		t.Errorf("MarkdownText() =\n%q\nwant\n%q", got, want)
	}
}

func TestMarkdownLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.md")
	if err := os.WriteFile(path, []byte("## Title\n\nBody text."), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != "Title\n\nBody text." {
		t.Errorf("Load() = %q", got)
	}
}

func TestMarkdownText_CodeBlockStaysOneParagraph(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "fenced",
			src:  "Intro.\n\n```go\nfunc a() {}\n\nfunc b() {}\n```\n\nOutro.\n",
			want: []string{"func a() {}", "func b() {}"},
		},
		{
			name: "indented",
			src:  "Intro.\n\n    code one\n\n    code two\n\nOutro.\n",
			want: []string{"code one", "code two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paragraphs := core.Segment(MarkdownText([]byte(tt.src)))
			if len(paragraphs) != 3 {
				t.Fatalf("got %d paragraphs, want 3: %q", len(paragraphs), MarkdownText([]byte(tt.src)))
			}
			if paragraphs[0].Content != "Intro." || paragraphs[2].Content != "Outro." {
				t.Errorf("surrounding paragraphs = %q, %q", paragraphs[0].Content, paragraphs[2].Content)
			}
			for _, want := range tt.want {
				if !strings.Contains(paragraphs[1].Content, want) {
					t.Errorf("code paragraph %q missing %q", paragraphs[1].Content, want)
				}
			}
		})
	}
}
