// ABOUTME: Builds the analysis request text sent to the language-analysis service
// ABOUTME: Lists every paragraph with its id and the closed output vocabularies
package core

import (
	"fmt"
	"strings"

	"github.com/harper/bookchunk/internal/models"
)

// FormatParagraphs renders records as `[Paragraph with id=N]: "content"`, one per line
func FormatParagraphs(records []models.ParagraphRecord) string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf(`[Paragraph with id=%d]: "%s"`, r.ID, r.Content)
	}
	return strings.Join(lines, "\n\t")
}

// BuildAnalysisPrompt returns the full request text for the given paragraphs
func BuildAnalysisPrompt(records []models.ParagraphRecord) string {
	var b strings.Builder

	b.WriteString("Analyze the mood, sentiment, type, and type_details of the following paragraphs.\n\n")
	b.WriteString(`Return a JSON object with a single key "analysis_results" holding a JSON array with one object per paragraph:` + "\n")
	b.WriteString("  paragraph_id: the id of the paragraph\n")
	fmt.Fprintf(&b, "  mood: one of %s\n", joinValues(models.Moods()))
	fmt.Fprintf(&b, "  sentiment: one of %s\n", joinValues(models.Sentiments()))
	fmt.Fprintf(&b, "  type: one of %s\n", joinValues(models.ParagraphTypes()))
	b.WriteString(`  type_details: what the type is about, e.g. "nature" for a description of nature` + "\n\n")
	b.WriteString("\t")
	b.WriteString(FormatParagraphs(records))
	b.WriteString("\n")

	return b.String()
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
