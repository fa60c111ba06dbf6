// ABOUTME: Tests for the closed Mood, Sentiment and ParagraphType sets
// ABOUTME: Verifies known values pass and anything else is rejected
package models

import "testing"

func TestMood_IsValid(t *testing.T) {
	for _, m := range Moods() {
		if !m.IsValid() {
			t.Errorf("Mood(%q).IsValid() = false, want true", m)
		}
	}

	if len(Moods()) != 13 {
		t.Errorf("len(Moods()) = %d, want 13", len(Moods()))
	}

	invalid := []Mood{"", "Happy", "HAPPY", "joyful", " happy"}
	for _, m := range invalid {
		if m.IsValid() {
			t.Errorf("Mood(%q).IsValid() = true, want false", m)
		}
	}
}

func TestSentiment_IsValid(t *testing.T) {
	tests := []struct {
		sentiment Sentiment
		want      bool
	}{
		{SentimentPositive, true},
		{SentimentNegative, true},
		{SentimentNeutral, true},
		{"mixed", false},
		{"", false},
		{"Positive", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.sentiment), func(t *testing.T) {
			if got := tt.sentiment.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParagraphType_IsValid(t *testing.T) {
	for _, pt := range ParagraphTypes() {
		if !pt.IsValid() {
			t.Errorf("ParagraphType(%q).IsValid() = false, want true", pt)
		}
	}

	for _, pt := range []ParagraphType{"", "narration", "Dialogue"} {
		if pt.IsValid() {
			t.Errorf("ParagraphType(%q).IsValid() = true, want false", pt)
		}
	}
}
