package inference

import (
	"strings"

	"github.com/turtacn/CivicDraft/internal/domain/classify"
)

// Keyword indicators for narrowing an intent to a concrete document type.
// Plain keyword matching, ordered so ties resolve to the earlier entry.

type docIndicator struct {
	docType  DocumentType
	keywords []string
}

var rtiDocIndicators = []docIndicator{
	{DocInformationRequest, []string{
		"information", "details", "data", "statistics", "records",
		"expenditure", "budget", "allocation", "spending",
	}},
	{DocRecordsRequest, []string{
		"copies", "documents", "files", "papers", "correspondence",
		"letters", "orders", "circulars", "notifications",
	}},
	{DocInspectionRequest, []string{
		"inspection", "examine", "verify", "check", "physical verification",
		"site visit", "on-site", "inspect documents",
	}},
}

var complaintDocIndicators = []docIndicator{
	{DocGrievance, []string{
		"problem", "issue", "not working", "broken", "complaint",
		"grievance", "facing", "suffering", "harassment",
	}},
	{DocEscalation, []string{
		"no response", "ignored", "multiple complaints", "escalate",
		"higher authority", "senior officer", "months", "years",
	}},
	{DocFollowUp, []string{
		"follow up", "reminder", "pending", "status", "earlier complaint",
		"reference number", "tracking", "previous",
	}},
}

// determineDocumentType narrows intent to a document type by counting
// indicator keywords.  Appeals and escalations map directly; an unknown
// intent defaults to a grievance at low confidence.
func determineDocumentType(text string, intent classify.Intent) (DocumentType, float64) {
	lower := strings.ToLower(text)

	var indicators []docIndicator
	var fallback DocumentType
	switch intent {
	case classify.IntentRTI:
		indicators = rtiDocIndicators
		fallback = DocInformationRequest
	case classify.IntentComplaint:
		indicators = complaintDocIndicators
		fallback = DocGrievance
	case classify.IntentAppeal, classify.IntentEscalation:
		return DocEscalation, 0.9
	case classify.IntentFollowUp:
		return DocFollowUp, 0.9
	default:
		return DocGrievance, 0.5
	}

	best := fallback
	bestCount := 0
	for _, ind := range indicators {
		count := 0
		for _, kw := range ind.keywords {
			if strings.Contains(lower, kw) {
				count++
			}
		}
		if count > bestCount {
			best = ind.docType
			bestCount = count
		}
	}

	if bestCount == 0 {
		return fallback, 0.7
	}
	conf := 0.6 + float64(bestCount)*0.1
	if conf > 0.95 {
		conf = 0.95
	}
	return best, conf
}
