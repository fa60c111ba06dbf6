// ABOUTME: ChunkEngine segments raw text into paragraphs and groups them into chunks
// ABOUTME: Greedy single pass bounded by a target word count; paragraphs are never split
package core

import (
	"strings"

	"github.com/harper/bookchunk/internal/models"
)

// Segment splits text into paragraphs on runs of blank lines. A line is blank
// when it holds only Unicode whitespace. Pieces are trimmed and empty pieces
// dropped; order is preserved.
func Segment(text string) []models.Paragraph {
	var paragraphs []models.Paragraph
	var lines []string

	flush := func() {
		piece := strings.TrimSpace(strings.Join(lines, "\n"))
		if piece != "" {
			paragraphs = append(paragraphs, models.Paragraph{Content: piece})
		}
		lines = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		lines = append(lines, line)
	}
	flush()

	return paragraphs
}

// Assemble groups consecutive paragraphs into chunks.
//
// A paragraph joins the open chunk while the open chunk holds fewer than target
// words; otherwise the open chunk closes and the paragraph starts the next one.
// An empty chunk always accepts a paragraph, so an oversized paragraph becomes
// its own chunk. The last chunk may be below target. Ids run 0..n-1.
func Assemble(paragraphs []models.Paragraph, target int) []models.Chunk {
	var chunks []models.Chunk
	var open []string
	openWords := 0

	closeOpen := func() {
		chunks = append(chunks, models.Chunk{
			ID:        len(chunks),
			Content:   strings.Join(open, models.ParagraphSeparator),
			WordCount: openWords,
		})
		open = nil
		openWords = 0
	}

	for _, p := range paragraphs {
		if len(open) > 0 && openWords >= target {
			closeOpen()
		}
		open = append(open, p.Content)
		openWords += p.WordCount()
	}

	if len(open) > 0 {
		closeOpen()
	}

	return chunks
}
