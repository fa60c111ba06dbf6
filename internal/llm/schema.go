// ABOUTME: JSON schema for the structured analysis response
// ABOUTME: Reflected from the response types with closed vocabularies as enums
package llm

import (
	"github.com/invopop/jsonschema"

	"github.com/harper/bookchunk/internal/models"
)

// AnalysisSchema reflects the analysis response container into a JSON schema
// with the closed vocabularies filled in as enums
func AnalysisSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&models.AnalysisResponse{})
	schema.Version = ""
	schema.ID = ""

	results, ok := schema.Properties.Get("analysis_results")
	if !ok || results.Items == nil {
		return schema
	}
	record := results.Items

	setEnum(record, "mood", models.Moods())
	setEnum(record, "sentiment", models.Sentiments())
	setEnum(record, "type", models.ParagraphTypes())
	return schema
}

func setEnum[T ~string](schema *jsonschema.Schema, property string, values []T) {
	prop, ok := schema.Properties.Get(property)
	if !ok {
		return
	}
	prop.Enum = make([]any, len(values))
	for i, v := range values {
		prop.Enum[i] = string(v)
	}
}
