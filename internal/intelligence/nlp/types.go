// Package nlp provides lightweight linguistic analysis for civic text:
// entity extraction (names, places, contact details, reference numbers),
// key-phrase detection, sentiment, and urgency.  It is secondary to the
// rule engine and only runs when rule confidence is low.  Everything here
// is deterministic pattern matching against curated gazetteers.
package nlp

import "time"

// EntityType classifies an extracted entity.
type EntityType string

const (
	EntityPerson          EntityType = "person"
	EntityOrganization    EntityType = "organization"
	EntityLocation        EntityType = "location"
	EntityDate            EntityType = "date"
	EntityMoney           EntityType = "money"
	EntityReferenceNumber EntityType = "reference_number"
	EntityPhone           EntityType = "phone"
	EntityEmail           EntityType = "email"
)

// Entity is a single extraction with provenance for the audit trail.
type Entity struct {
	Text       string     `json:"text"`
	Type       EntityType `json:"type"`
	Confidence float64    `json:"confidence"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Source     string     `json:"source"`
}

// MatchedPhrases groups civic-specific phrase hits by category.
type MatchedPhrases struct {
	Departments      []string `json:"departments"`
	RTITerms         []string `json:"rti_terms"`
	ComplaintMarkers []string `json:"complaint_markers"`
}

// Step is one audit entry describing a stage of the analysis.
type Step struct {
	Name   string `json:"step"`
	Detail string `json:"detail,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// Result is the complete analysis output.
type Result struct {
	Entities          []Entity       `json:"entities"`
	KeyPhrases        []string       `json:"key_phrases"`
	MatchedPhrases    MatchedPhrases `json:"matched_phrases"`
	Sentiment         Sentiment      `json:"sentiment"`
	Urgency           Urgency        `json:"urgency_level"`
	UrgencyConfidence float64        `json:"urgency_confidence"`
	WordCount         int            `json:"word_count"`
	ProcessingTime    time.Duration  `json:"processing_time"`
	Steps             []Step         `json:"audit_trail"`
}

// ByType returns the texts of all entities of the given type, in extraction
// order.
func (r Result) ByType(t EntityType) []string {
	var out []string
	for _, e := range r.Entities {
		if e.Type == t {
			out = append(out, e.Text)
		}
	}
	return out
}

// Sentiment is the rule-based tone of the text.
type Sentiment string

const (
	SentimentUrgent     Sentiment = "urgent"
	SentimentFrustrated Sentiment = "frustrated"
	SentimentFormal     Sentiment = "formal"
	SentimentNeutral    Sentiment = "neutral"
)

// Urgency is how quickly the matter needs attention.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)
