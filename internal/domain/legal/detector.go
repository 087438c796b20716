package legal

import (
	"strings"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

// Detector performs legal context analysis.  Stateless and safe for
// concurrent use.
type Detector struct {
	logger logging.Logger
}

// NewDetector returns a ready Detector.
func NewDetector(logger logging.Logger) *Detector {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Detector{logger: logger.Named("legal")}
}

// Analyze scans text for RTI section triggers and grievance markers and
// derives severity, the applicable timeline and advisory notes.
func (d *Detector) Analyze(text string) Analysis {
	lower := strings.ToLower(text)

	// RTI sections: the first matching trigger includes the section once.
	var sections []Reference
	var citations []string
	for _, entry := range rtiSections {
		for _, trigger := range entry.triggers {
			if strings.Contains(lower, trigger) {
				sections = append(sections, entry.reference)
				citations = append(citations, entry.reference.Citation)
				break
			}
		}
	}

	// Grievance markers, tracking the maximum severity seen.
	var markers []Marker
	maxSeverity := SeverityLow
	for _, entry := range grievanceMarkers {
		var found []string
		for _, trigger := range entry.triggers {
			if strings.Contains(lower, trigger) {
				found = append(found, trigger)
			}
		}
		if len(found) == 0 {
			continue
		}
		markers = append(markers, Marker{
			Type:              entry.id,
			TriggersMatched:   found,
			Severity:          entry.severity,
			RecommendedAction: entry.action,
			EscalationNeeded:  entry.escalateAfterDays == 0,
		})
		if entry.severity.Rank() > maxSeverity.Rank() {
			maxSeverity = entry.severity
		}
	}

	timeline := applicableTimeline(lower, sections)
	notes := buildNotes(sections, markers, maxSeverity)

	d.logger.Debug("legal context analyzed",
		logging.Int("rti_sections", len(sections)),
		logging.Int("grievance_markers", len(markers)),
		logging.String("severity", string(maxSeverity)))

	return Analysis{
		RTISections:        sections,
		GrievanceMarkers:   markers,
		SuggestedCitations: citations,
		OverallSeverity:    maxSeverity,
		TimelineApplicable: timeline,
		LegalNotes:         notes,
	}
}

// applicableTimeline picks the statutory deadline implied by the text.
// Life/liberty urgency overrides everything.
func applicableTimeline(lower string, sections []Reference) string {
	for _, word := range strings.Fields(lower) {
		if strings.Contains(word, "life") || strings.Contains(word, "liberty") || strings.Contains(word, "emergency") {
			return "48 hours (Section 7(1) proviso - life/liberty)"
		}
	}

	hasSection := func(name string) bool {
		for _, s := range sections {
			if s.Section == name {
				return true
			}
		}
		return false
	}

	switch {
	case hasSection("Section 6"):
		return "30 days (Section 7(1))"
	case hasSection("Section 19"):
		if strings.Contains(lower, "second appeal") {
			return "90 days from First Appeal (Section 19(3))"
		}
		return "30 days from decision (Section 19(1))"
	}
	return ""
}

// buildNotes assembles advisory notes from the detection results.
func buildNotes(sections []Reference, markers []Marker, maxSeverity Severity) []string {
	var notes []string

	if len(sections) > 0 {
		notes = append(notes, "This appears to be an RTI-related matter under the RTI Act, 2005")
	}
	if maxSeverity == SeverityCritical {
		notes = append(notes,
			"CRITICAL: This matter requires immediate attention",
			"Consider filing FIR if criminal activity is involved")
	}

	hasMarker := func(id string) bool {
		for _, m := range markers {
			if m.Type == id {
				return true
			}
		}
		return false
	}

	if hasMarker("corruption") {
		notes = append(notes,
			"Consider reporting to Anti-Corruption Bureau / Vigilance Department",
			"Preserve all evidence including recordings if legally obtained")
	}
	if hasMarker("urgency_life_liberty") {
		notes = append(notes,
			"48-hour timeline applicable under RTI Act Section 7(1)",
			"For emergencies, also contact emergency services (100/108)")
	}
	return notes
}

// RecommendedActions derives the action list for a submission: deduplicated
// marker actions, an urgency prefix when critical, and the RTI filing step.
func (d *Detector) RecommendedActions(text string) []string {
	analysis := d.Analyze(text)

	var actions []string
	seen := make(map[string]bool)
	for _, m := range analysis.GrievanceMarkers {
		if !seen[m.RecommendedAction] {
			seen[m.RecommendedAction] = true
			actions = append(actions, m.RecommendedAction)
		}
	}

	if analysis.OverallSeverity == SeverityCritical {
		actions = append([]string{"URGENT: Take immediate action"}, actions...)
	}

	if len(analysis.RTISections) > 0 {
		appeal := false
		for _, s := range analysis.RTISections {
			if s.Section == "Section 19" {
				appeal = true
				break
			}
		}
		if appeal {
			actions = append(actions, "File appeal with supporting documents")
		} else {
			actions = append(actions, "File RTI application with Rs. 10 fee")
		}
	}
	return actions
}

// TimelineFor returns the statutory response window for a document type.
// Life/liberty RTI matters get the 48-hour proviso.
func TimelineFor(documentType string, lifeLiberty bool) Timeline {
	if documentType == "rti" && lifeLiberty {
		return serviceTimelines["rti_life_liberty"]
	}

	key := map[string]string{
		"rti":                 "rti_response",
		"information_request": "rti_response",
		"first_appeal":        "first_appeal",
		"second_appeal":       "second_appeal",
		"complaint":           "grievance_resolution",
		"grievance":           "grievance_resolution",
	}[documentType]
	if key == "" {
		key = "grievance_resolution"
	}

	if tl, ok := serviceTimelines[key]; ok {
		return tl
	}
	return Timeline{Days: 30, Reference: "Standard"}
}

// SectionByID returns a provision by its identifier, e.g. "section_7".
func SectionByID(id string) (Reference, bool) {
	for _, entry := range rtiSections {
		if entry.id == id {
			return entry.reference, true
		}
	}
	return Reference{}, false
}

// AllSections lists every RTI Act provision known to the detector.
func AllSections() []Reference {
	out := make([]Reference, 0, len(rtiSections))
	for _, entry := range rtiSections {
		out = append(out, entry.reference)
	}
	return out
}

// OverallSeverity computes the maximum severity across markers, defaulting
// to low.
func OverallSeverity(markers []Marker) Severity {
	max := SeverityLow
	for _, m := range markers {
		if m.Severity.Rank() > max.Rank() {
			max = m.Severity
		}
	}
	return max
}

// ShouldEscalate reports whether any marker demands immediate escalation.
func ShouldEscalate(markers []Marker) bool {
	for _, m := range markers {
		if m.EscalationNeeded {
			return true
		}
	}
	return false
}
