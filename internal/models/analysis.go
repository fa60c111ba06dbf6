// ABOUTME: AnalysisRecord is the per-paragraph annotation returned by the analysis service
// ABOUTME: Mood, Sentiment and ParagraphType are closed sets with explicit validity checks
package models

// Mood is the emotional tone of a paragraph
type Mood string

const (
	MoodHappy        Mood = "happy"
	MoodSad          Mood = "sad"
	MoodAngry        Mood = "angry"
	MoodExcited      Mood = "excited"
	MoodAnxious      Mood = "anxious"
	MoodConfused     Mood = "confused"
	MoodSurprised    Mood = "surprised"
	MoodDisappointed Mood = "disappointed"
	MoodGrateful     Mood = "grateful"
	MoodLonely       Mood = "lonely"
	MoodHopeful      Mood = "hopeful"
	MoodContent      Mood = "content"
	MoodFrustrated   Mood = "frustrated"
)

// Moods lists every valid Mood in declaration order
func Moods() []Mood {
	return []Mood{
		MoodHappy, MoodSad, MoodAngry, MoodExcited, MoodAnxious, MoodConfused, MoodSurprised,
		MoodDisappointed, MoodGrateful, MoodLonely, MoodHopeful, MoodContent, MoodFrustrated,
	}
}

// IsValid reports whether m is one of the known moods
func (m Mood) IsValid() bool {
	for _, known := range Moods() {
		if m == known {
			return true
		}
	}
	return false
}

// Sentiment is the polarity of a paragraph
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Sentiments lists every valid Sentiment
func Sentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNegative, SentimentNeutral}
}

// IsValid reports whether s is one of the known sentiments
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// ParagraphType classifies what a paragraph is doing in the text
type ParagraphType string

const (
	TypeDialogue      ParagraphType = "dialogue"
	TypeDescription   ParagraphType = "description"
	TypeAction        ParagraphType = "action"
	TypeContemplation ParagraphType = "contemplation"
	TypeReflection    ParagraphType = "reflection"
)

// ParagraphTypes lists every valid ParagraphType
func ParagraphTypes() []ParagraphType {
	return []ParagraphType{TypeDialogue, TypeDescription, TypeAction, TypeContemplation, TypeReflection}
}

// IsValid reports whether t is one of the known paragraph types
func (t ParagraphType) IsValid() bool {
	for _, known := range ParagraphTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// AnalysisRecord is the annotation for a single paragraph
type AnalysisRecord struct {
	ParagraphID int           `json:"paragraph_id"`
	Mood        Mood          `json:"mood"`
	Sentiment   Sentiment     `json:"sentiment"`
	Type        ParagraphType `json:"type"`
	TypeDetails string        `json:"type_details"`
}

// AnalysisResponse is the container shape requested from the analysis service.
// Only AnalysisResults is persisted.
type AnalysisResponse struct {
	AnalysisResults []AnalysisRecord `json:"analysis_results"`
}
