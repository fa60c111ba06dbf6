// ABOUTME: Markdown loader producing one paragraph per top-level block
// ABOUTME: Parses with goldmark and keeps inline markup as written
package source

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harper/bookchunk/internal/models"
)

// MarkdownLoader emits one paragraph per top-level Markdown block.
// Inline markup inside a block is kept as written.
type MarkdownLoader struct{}

func (MarkdownLoader) Name() string { return "markdown" }

func (MarkdownLoader) Load(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return MarkdownText(data), nil
}

// MarkdownText extracts block text from Markdown source, blocks separated by a blank line
func MarkdownText(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if _, ok := n.(*ast.ThematicBreak); ok {
			continue
		}
		if block := strings.TrimSpace(blockText(n, src)); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, models.ParagraphSeparator)
}

// blockText returns the source lines of a leaf block, or the text of its child
// blocks joined by newlines for containers such as lists and block quotes.
// Blank lines inside a block (code blocks, loose lists) are dropped so the
// block stays a single paragraph.
func blockText(n ast.Node, src []byte) string {
	if n.Type() != ast.TypeBlock {
		return ""
	}

	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		var b strings.Builder
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i).Value(src)
			if strings.TrimSpace(string(line)) == "" {
				continue
			}
			b.Write(line)
		}
		return strings.TrimRight(b.String(), "\n")
	}

	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if part := strings.TrimSpace(blockText(c, src)); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n")
}
