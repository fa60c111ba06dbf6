// ABOUTME: Tests for Paragraph and Chunk models
// ABOUTME: Verifies word counting, paragraph recovery and JSON field order
package models

import (
	"encoding/json"
	"testing"
)

func TestParagraph_WordCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"single word", "hello", 1},
		{"spaces", "one two  three", 3},
		{"tabs and newlines", "one\ttwo\nthree\r\nfour", 4},
		{"leading and trailing whitespace", "  padded words  ", 2},
		{"punctuation stays attached", "Hello, world! -- yes.", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paragraph{Content: tt.content}.WordCount()
			if got != tt.want {
				t.Errorf("WordCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChunk_Paragraphs(t *testing.T) {
	chunk := Chunk{ID: 0, Content: "first one\n\nsecond\n\nthird", WordCount: 4}

	got := chunk.Paragraphs()
	want := []string{"first one", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("Paragraphs() returned %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Content != want[i] {
			t.Errorf("Paragraphs()[%d] = %q, want %q", i, got[i].Content, want[i])
		}
	}

	if empty := (Chunk{}).Paragraphs(); empty != nil {
		t.Errorf("Paragraphs() on empty chunk = %v, want nil", empty)
	}
}

func TestChunk_JSONFieldOrder(t *testing.T) {
	data, err := json.Marshal(Chunk{ID: 3, Content: "text", WordCount: 1})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"id":3,"content":"text","word_count":1}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestAnalysisRecord_JSONFieldOrder(t *testing.T) {
	data, err := json.Marshal(AnalysisRecord{
		ParagraphID: 1,
		Mood:        MoodHopeful,
		Sentiment:   SentimentPositive,
		Type:        TypeDescription,
		TypeDetails: "nature",
	})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"paragraph_id":1,"mood":"hopeful","sentiment":"positive","type":"description","type_details":"nature"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
