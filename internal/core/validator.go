// ABOUTME: RecordValidator checks JSON crossing the analysis boundary in both directions
// ABOUTME: Fail closed: any invalid element rejects the whole batch
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"

	"github.com/harper/bookchunk/internal/models"
)

// ValidationIssue describes one failing element. Index is -1 for problems with
// the document as a whole.
type ValidationIssue struct {
	Index  int
	Field  string
	Reason string
}

func (i ValidationIssue) String() string {
	switch {
	case i.Index < 0:
		return i.Reason
	case i.Field == "":
		return fmt.Sprintf("[%d]: %s", i.Index, i.Reason)
	default:
		return fmt.Sprintf("[%d].%s: %s", i.Index, i.Field, i.Reason)
	}
}

// ValidationError lists every failing element of a rejected batch
type ValidationError struct {
	Record string
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %d issue(s): %s", e.Record, len(e.Issues), strings.Join(parts, "; "))
}

// Unwrap lets callers match with errors.Is(err, models.ErrSchemaValidation)
func (e *ValidationError) Unwrap() error {
	return models.ErrSchemaValidation
}

// paragraphWire uses pointers so a missing field is distinguishable from a zero value
type paragraphWire struct {
	ID      *int    `json:"id" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

type analysisWire struct {
	ParagraphID *int                  `json:"paragraph_id" validate:"required"`
	Mood        *models.Mood          `json:"mood" validate:"required,enum"`
	Sentiment   *models.Sentiment     `json:"sentiment" validate:"required,enum"`
	Type        *models.ParagraphType `json:"type" validate:"required,enum"`
	TypeDetails *string               `json:"type_details" validate:"required"`
}

type analysisContainerWire struct {
	AnalysisResults json.RawMessage `json:"analysis_results"`
}

// enumerated is implemented by the closed sets in models
type enumerated interface {
	IsValid() bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("enum", isKnownEnum); err != nil {
		panic(fmt.Sprintf("registering enum validation: %v", err))
	}
	return v
}

func isKnownEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	if !field.CanInterface() {
		return false
	}
	e, ok := field.Interface().(enumerated)
	return ok && e.IsValid()
}

// ValidateParagraphs decodes a JSON array of paragraph records. Extra fields are
// ignored. If any element lacks an integer id or a string content, nothing is
// returned and the error lists every failing element.
func ValidateParagraphs(data []byte) ([]models.ParagraphRecord, error) {
	elements, err := decodeArray(data)
	if err != nil {
		return nil, &ValidationError{Record: "paragraph records", Issues: []ValidationIssue{
			{Index: -1, Reason: err.Error()},
		}}
	}

	records := make([]models.ParagraphRecord, 0, len(elements))
	var issues []ValidationIssue
	for i, raw := range elements {
		var wire paragraphWire
		if elementIssues := decodeElement(i, raw, &wire); len(elementIssues) > 0 {
			issues = append(issues, elementIssues...)
			continue
		}
		records = append(records, models.ParagraphRecord{ID: *wire.ID, Content: *wire.Content})
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Record: "paragraph records", Issues: issues}
	}
	return records, nil
}

// ValidateAnalysis decodes the analysis service's response container and
// returns its analysis_results. Unknown enum values, missing fields or a
// missing container key reject the whole response.
func ValidateAnalysis(data []byte) ([]models.AnalysisRecord, error) {
	var container analysisContainerWire
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, &ValidationError{Record: "analysis response", Issues: []ValidationIssue{
			{Index: -1, Reason: fmt.Sprintf("expected a JSON object: %v", err)},
		}}
	}
	if len(container.AnalysisResults) == 0 || string(container.AnalysisResults) == "null" {
		return nil, &ValidationError{Record: "analysis response", Issues: []ValidationIssue{
			{Index: -1, Reason: "missing analysis_results"},
		}}
	}

	elements, err := decodeArray(container.AnalysisResults)
	if err != nil {
		return nil, &ValidationError{Record: "analysis response", Issues: []ValidationIssue{
			{Index: -1, Reason: "analysis_results: " + err.Error()},
		}}
	}

	records := make([]models.AnalysisRecord, 0, len(elements))
	var issues []ValidationIssue
	for i, raw := range elements {
		var wire analysisWire
		if elementIssues := decodeElement(i, raw, &wire); len(elementIssues) > 0 {
			issues = append(issues, elementIssues...)
			continue
		}
		records = append(records, models.AnalysisRecord{
			ParagraphID: *wire.ParagraphID,
			Mood:        *wire.Mood,
			Sentiment:   *wire.Sentiment,
			Type:        *wire.Type,
			TypeDetails: *wire.TypeDetails,
		})
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Record: "analysis response", Issues: issues}
	}
	return records, nil
}

func decodeArray(data []byte) ([]json.RawMessage, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("expected a JSON array: %w", err)
	}
	return elements, nil
}

// decodeElement unmarshals one array element into wire and runs the struct tags
func decodeElement(index int, raw json.RawMessage, wire any) []ValidationIssue {
	if err := json.Unmarshal(raw, wire); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if typeErr.Field == "" {
				return []ValidationIssue{{Index: index, Reason: "expected an object, got " + typeErr.Value}}
			}
			reason := fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)
			return []ValidationIssue{{Index: index, Field: typeErr.Field, Reason: reason}}
		}
		return []ValidationIssue{{Index: index, Reason: err.Error()}}
	}

	err := validate.Struct(wire)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationIssue{{Index: index, Reason: err.Error()}}
	}

	issues := make([]ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		reason := "is required"
		if fe.Tag() == "enum" {
			reason = fmt.Sprintf("unknown value %q", indirectString(fe.Value()))
		}
		issues = append(issues, ValidationIssue{Index: index, Field: fe.Field(), Reason: reason})
	}
	return issues
}

func indirectString(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	return fmt.Sprint(rv.Interface())
}
