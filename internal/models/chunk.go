// ABOUTME: Paragraph and Chunk are the units produced by segmentation and assembly
// ABOUTME: Chunk is the persisted, size-bounded group of consecutive paragraphs
package models

import "strings"

// ParagraphSeparator joins paragraphs inside a chunk's content
const ParagraphSeparator = "\n\n"

// Paragraph is a contiguous run of text with no internal blank line
type Paragraph struct {
	Content string
}

// WordCount returns the number of whitespace-delimited tokens in the paragraph
func (p Paragraph) WordCount() int {
	return len(strings.Fields(p.Content))
}

// Chunk is one or more consecutive paragraphs joined by ParagraphSeparator.
// Field order matches the persisted JSON layout.
type Chunk struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

// Paragraphs splits the chunk content back into its constituent paragraphs
func (c Chunk) Paragraphs() []Paragraph {
	if c.Content == "" {
		return nil
	}
	parts := strings.Split(c.Content, ParagraphSeparator)
	paragraphs := make([]Paragraph, len(parts))
	for i, part := range parts {
		paragraphs[i] = Paragraph{Content: part}
	}
	return paragraphs
}

// ParagraphRecord is the ingestion shape read back by the analysis stage.
// Extra fields in the source JSON (word_count, etc.) are ignored.
type ParagraphRecord struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}
