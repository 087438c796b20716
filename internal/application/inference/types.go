// Package inference wires the full pipeline together: rule engine, legal
// trigger detection, issue mapping, entity extraction, confidence gating,
// and the semantic matcher as a low-confidence fallback.  This package is
// the single source of truth for inference decisions; every step it takes
// lands in the decision path.
package inference

import (
	"github.com/turtacn/CivicDraft/internal/domain/classify"
	"github.com/turtacn/CivicDraft/internal/domain/confidence"
	"github.com/turtacn/CivicDraft/internal/domain/issue"
	"github.com/turtacn/CivicDraft/internal/domain/legal"
	"github.com/turtacn/CivicDraft/internal/intelligence/nlp"
)

// DocumentType is the kind of document the pipeline recommends drafting.
type DocumentType string

const (
	DocInformationRequest DocumentType = "information_request"
	DocRecordsRequest     DocumentType = "records_request"
	DocInspectionRequest  DocumentType = "inspection_request"
	DocGrievance          DocumentType = "grievance"
	DocEscalation         DocumentType = "escalation"
	DocFollowUp           DocumentType = "follow_up"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	switch t {
	case DocInformationRequest, DocRecordsRequest, DocInspectionRequest,
		DocGrievance, DocEscalation, DocFollowUp:
		return true
	}
	return false
}

// Request is one inference invocation.
type Request struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// Result is the complete pipeline output.
type Result struct {
	Intent                 classify.Intent  `json:"intent"`
	SubType                classify.SubType `json:"sub_type"`
	DocumentType           DocumentType     `json:"document_type"`
	DocumentTypeConfidence float64          `json:"document_type_confidence"`

	Confidence           float64                        `json:"confidence"`
	Level                confidence.Level               `json:"confidence_level"`
	RequiresConfirmation bool                           `json:"requires_confirmation"`
	Alternatives         []confidence.RankedAlternative `json:"alternatives,omitempty"`

	Entities   []nlp.Entity  `json:"extracted_entities"`
	KeyPhrases []string      `json:"key_phrases"`
	Sentiment  nlp.Sentiment `json:"sentiment"`
	Urgency    nlp.Urgency   `json:"urgency_level"`

	Legal  legal.Analysis `json:"legal_triggers"`
	Issues []issue.Match  `json:"department_mapping"`

	Suggestions  []string `json:"suggestions"`
	Explanation  string   `json:"explanation"`
	DecisionPath []string `json:"decision_path"`
	AuditID      string   `json:"audit_id"`
}

// EntitiesOfType returns the extracted texts of one entity type.
func (r Result) EntitiesOfType(t nlp.EntityType) []string {
	var out []string
	for _, e := range r.Entities {
		if e.Type == t {
			out = append(out, e.Text)
		}
	}
	return out
}
