// Package legal detects statutory context in citizen submissions: RTI Act
// 2005 sections, grievance markers with severity, applicable response
// timelines and suggested citations.  It supplies legal context for document
// drafting, not legal advice, and all provision text is human-written.
package legal

// Severity grades how urgently a grievance needs handling.
type Severity string

const (
	SeverityCritical Severity = "critical" // immediate action needed
	SeverityHigh     Severity = "high"     // urgent, escalation recommended
	SeverityMedium   Severity = "medium"   // standard processing
	SeverityLow      Severity = "low"      // information or query
)

// Rank orders severities for comparison; higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// Category classifies a legal provision.
type Category string

const (
	CategoryRTIAct           Category = "rti_act"
	CategoryGrievance        Category = "grievance"
	CategoryConsumer         Category = "consumer"
	CategoryServiceGuarantee Category = "service_guarantee"
	CategoryCitizenCharter   Category = "citizen_charter"
)

// Reference is one statutory provision with its citation.
type Reference struct {
	Section      string   `json:"section"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	ApplicableTo []string `json:"applicable_to"`
	Citation     string   `json:"citation"`
}

// Marker is a grievance indicator found in the text.
type Marker struct {
	Type              string   `json:"type"`
	TriggersMatched   []string `json:"triggers_matched"`
	Severity          Severity `json:"severity"`
	RecommendedAction string   `json:"recommended_action"`
	EscalationNeeded  bool     `json:"escalation_needed"`
}

// Timeline is the statutory response window for a document type.
type Timeline struct {
	Days      int    `json:"days"`
	Reference string `json:"reference"`
}

// Analysis is the complete legal context extracted from a submission.
type Analysis struct {
	RTISections        []Reference `json:"rti_sections"`
	GrievanceMarkers   []Marker    `json:"grievance_markers"`
	SuggestedCitations []string    `json:"suggested_citations"`
	OverallSeverity    Severity    `json:"overall_severity"`
	TimelineApplicable string      `json:"timeline_applicable,omitempty"`
	LegalNotes         []string    `json:"legal_notes"`
}
