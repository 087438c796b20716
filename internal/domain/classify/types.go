// Package classify implements the primary intent classification layer for
// citizen submissions.  It is a deterministic weighted-keyword rule engine:
// every decision starts here, and statistical stages run only when this
// layer's confidence falls below the escalation threshold.
package classify

// ─────────────────────────────────────────────────────────────────────────────
// Intent and sub-type enumerations
// ─────────────────────────────────────────────────────────────────────────────

// Intent is the top-level purpose detected in a submission.
type Intent string

const (
	IntentRTI        Intent = "rti"
	IntentComplaint  Intent = "complaint"
	IntentAppeal     Intent = "appeal"
	IntentFollowUp   Intent = "follow_up"
	IntentEscalation Intent = "escalation"
	IntentUnknown    Intent = "unknown"
)

// Valid reports whether i is one of the actionable intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentRTI, IntentComplaint, IntentAppeal, IntentFollowUp, IntentEscalation:
		return true
	}
	return false
}

// Description returns a short human-readable explanation of the intent,
// shown alongside suggestions when the caller must choose manually.
func (i Intent) Description() string {
	switch i {
	case IntentRTI:
		return "Request for information under RTI Act 2005"
	case IntentComplaint:
		return "File a complaint or grievance"
	case IntentAppeal:
		return "Appeal against an RTI response or decision"
	case IntentFollowUp:
		return "Follow up on a pending application"
	case IntentEscalation:
		return "Escalate matter to higher authority"
	default:
		return "Unable to determine - please specify"
	}
}

// SubType refines an Intent into a concrete document variant.
type SubType string

const (
	// RTI sub-types.
	SubTypeInformationRequest SubType = "information_request"
	SubTypeRecordsRequest     SubType = "records_request"
	SubTypeInspectionRequest  SubType = "inspection_request"

	// Complaint sub-types.
	SubTypeGrievance           SubType = "grievance"
	SubTypeCorruptionComplaint SubType = "corruption_complaint"
	SubTypeServiceComplaint    SubType = "service_complaint"

	// Appeal sub-types.
	SubTypeFirstAppeal  SubType = "first_appeal"
	SubTypeSecondAppeal SubType = "second_appeal"

	SubTypeGeneral SubType = "general"
)

// ─────────────────────────────────────────────────────────────────────────────
// Results
// ─────────────────────────────────────────────────────────────────────────────

// Match records a single keyword hit contributing to an intent score.
type Match struct {
	Keyword  string  `json:"keyword"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	Position int     `json:"position"`
}

// Result is the complete classification outcome including the audit trail.
type Result struct {
	Intent       Intent             `json:"intent"`
	SubType      SubType            `json:"sub_type"`
	Confidence   float64            `json:"confidence"`
	Matches      []Match            `json:"matches"`
	Scores       map[Intent]float64 `json:"scores"`
	DecisionPath []string           `json:"decision_path"`
	RequiresNLP  bool               `json:"requires_nlp"`
	Ambiguous    bool               `json:"ambiguous"`
}

// Suggestion pairs a candidate intent with its score, used when confidence
// is too low to act without the user choosing.
type Suggestion struct {
	Intent      Intent  `json:"intent"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

// Field describes one input required to complete a document of a given
// intent.
type Field struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}
