// Package confidence implements the gating layer that decides how much to
// trust each pipeline stage's output: whether to escalate to the next stage,
// whether the user must confirm, and how to explain the decision.  Every
// gating decision is recorded in an in-memory audit trail.
package confidence

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Levels and sources
// ─────────────────────────────────────────────────────────────────────────────

// Level buckets a confidence score into an actionable band.
type Level string

const (
	LevelHigh    Level = "high"     // auto-apply
	LevelMedium  Level = "medium"   // suggest with highlight
	LevelLow     Level = "low"      // show alternatives, require confirmation
	LevelVeryLow Level = "very_low" // manual input required
)

// Source identifies which pipeline stage produced a value.
type Source string

const (
	SourceRuleEngine       Source = "rule_engine"
	SourceEntityExtraction Source = "entity_extraction"
	SourceSemantic         Source = "semantic"
	SourceUserInput        Source = "user_input"
	SourceFallback         Source = "fallback"
)

// Thresholds holds the band boundaries and escalation cut-offs.
type Thresholds struct {
	High   float64
	Medium float64
	Low    float64

	// Escalation: a rule-engine result below UseNLPBelow runs entity
	// extraction; an extraction result below UseSemanticBelow also runs
	// the semantic matcher.
	UseNLPBelow      float64
	UseSemanticBelow float64
}

// DefaultThresholds returns the production values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		High:             0.90,
		Medium:           0.70,
		Low:              0.50,
		UseNLPBelow:      0.70,
		UseSemanticBelow: 0.60,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Result types
// ─────────────────────────────────────────────────────────────────────────────

// Alternative is a candidate value the user may pick instead of the gated
// primary value.
type Alternative struct {
	Value      interface{} `json:"value"`
	Label      string      `json:"label,omitempty"`
	Confidence float64     `json:"confidence"`
}

// RankedAlternative is an Alternative prepared for display.
type RankedAlternative struct {
	Rank        int         `json:"rank"`
	Value       interface{} `json:"value"`
	Confidence  float64     `json:"confidence"`
	Label       string      `json:"label"`
	Explanation string      `json:"explanation"`
}

// GatedResult wraps a value with its gating outcome.
type GatedResult struct {
	Value                interface{}         `json:"value"`
	Confidence           float64             `json:"confidence"`
	Level                Level               `json:"confidence_level"`
	RequiresConfirmation bool                `json:"requires_confirmation"`
	Alternatives         []RankedAlternative `json:"alternatives"`
	Explanation          string              `json:"explanation"`
	Source               Source              `json:"source"`
	Timestamp            time.Time           `json:"timestamp"`
	AuditID              string              `json:"audit_id"`
}

// Decision records why the gate chose to escalate or confirm.
type Decision struct {
	InputConfidence      float64 `json:"input_confidence"`
	InputSource          Source  `json:"input_source"`
	OutputLevel          Level   `json:"output_level"`
	ShouldUseNLP         bool    `json:"should_use_nlp"`
	ShouldUseSemantic    bool    `json:"should_use_semantic"`
	RequiresConfirmation bool    `json:"requires_user_confirmation"`
	Reason               string  `json:"reason"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Gate
// ─────────────────────────────────────────────────────────────────────────────

// Gate applies confidence thresholds and records every decision in its audit
// trail.  Safe for concurrent use.
type Gate struct {
	thresholds Thresholds
	audit      *AuditTrail
	logger     logging.Logger
}

// NewGate builds a Gate with the given thresholds and audit capacity.
func NewGate(thresholds Thresholds, auditCapacity int, logger logging.Logger) *Gate {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Gate{
		thresholds: thresholds,
		audit:      NewAuditTrail(auditCapacity),
		logger:     logger.Named("confidence"),
	}
}

// Thresholds returns the configured band boundaries.
func (g *Gate) Thresholds() Thresholds { return g.thresholds }

// Audit returns the gate's audit trail.
func (g *Gate) Audit() *AuditTrail { return g.audit }

// LevelOf buckets a score into its confidence band.
func (g *Gate) LevelOf(confidence float64) Level {
	switch {
	case confidence >= g.thresholds.High:
		return LevelHigh
	case confidence >= g.thresholds.Medium:
		return LevelMedium
	case confidence >= g.thresholds.Low:
		return LevelLow
	default:
		return LevelVeryLow
	}
}

// ShouldEscalateToNLP reports whether the rule engine's confidence is too
// low to stand alone.  The rule engine stays primary; extraction only
// enriches weak results.
func (g *Gate) ShouldEscalateToNLP(ruleConfidence float64) bool {
	return ruleConfidence < g.thresholds.UseNLPBelow
}

// ShouldEscalateToSemantic reports whether the semantic matcher should run
// after entity extraction.
func (g *Gate) ShouldEscalateToSemantic(confidence float64) bool {
	return confidence < g.thresholds.UseSemanticBelow
}

// Decide produces the full gating decision for a stage result.
func (g *Gate) Decide(confidence float64, source Source) Decision {
	level := g.LevelOf(confidence)
	useNLP := source == SourceRuleEngine && g.ShouldEscalateToNLP(confidence)
	useSemantic := source == SourceEntityExtraction && g.ShouldEscalateToSemantic(confidence)
	requiresConfirmation := level == LevelLow || level == LevelVeryLow

	var reason string
	switch level {
	case LevelHigh:
		reason = fmt.Sprintf("High confidence (%.0f%%) from %s - auto-applying", confidence*100, source)
	case LevelMedium:
		if useNLP {
			reason = fmt.Sprintf("Medium confidence (%.0f%%) from rules - enhancing with entity extraction", confidence*100)
		} else {
			reason = fmt.Sprintf("Medium confidence (%.0f%%) - suggesting with verification", confidence*100)
		}
	case LevelLow:
		if useSemantic {
			reason = fmt.Sprintf("Low confidence (%.0f%%) - using semantic similarity for alternatives", confidence*100)
		} else {
			reason = fmt.Sprintf("Low confidence (%.0f%%) - user confirmation required", confidence*100)
		}
	default:
		reason = fmt.Sprintf("Very low confidence (%.0f%%) - manual input recommended", confidence*100)
	}

	return Decision{
		InputConfidence:      confidence,
		InputSource:          source,
		OutputLevel:          level,
		ShouldUseNLP:         useNLP,
		ShouldUseSemantic:    useSemantic,
		RequiresConfirmation: requiresConfirmation,
		Reason:               reason,
	}
}

// Gate wraps value in a GatedResult: level, confirmation flag, ranked
// alternatives, an explanation for the user, and an audit entry.  Legally
// sensitive content requires confirmation regardless of score.
func (g *Gate) Gate(value interface{}, confidence float64, source Source, alternatives []Alternative, context string, sensitive bool) GatedResult {
	level := g.LevelOf(confidence)
	requiresConfirmation := level == LevelLow || level == LevelVeryLow || sensitive

	var explanation string
	switch level {
	case LevelHigh:
		explanation = fmt.Sprintf("High confidence (%.0f%%) from %s - applied automatically", confidence*100, source)
	case LevelMedium:
		explanation = fmt.Sprintf("Medium confidence (%.0f%%) from %s - please verify this is correct", confidence*100, source)
	case LevelLow:
		explanation = fmt.Sprintf("Low confidence (%.0f%%) from %s - please select from options or provide manually", confidence*100, source)
	default:
		explanation = fmt.Sprintf("Very low confidence (%.0f%%) - manual input is recommended", confidence*100)
	}
	if sensitive && level != LevelLow && level != LevelVeryLow {
		explanation += ". Legally sensitive content - confirmation required"
	}
	if context != "" {
		explanation += ". " + context
	}

	auditID := g.audit.Record(Entry{
		DecisionType: "gate_result",
		Confidence:   confidence,
		Source:       source,
		Level:        level,
		Summary:      fmt.Sprintf("value=%v requires_confirmation=%t", value, requiresConfirmation),
	})

	g.logger.Info("gated result",
		logging.String("audit_id", auditID),
		logging.Float64("confidence", confidence),
		logging.String("level", string(level)),
		logging.Bool("requires_confirmation", requiresConfirmation),
		logging.String("source", string(source)))

	return GatedResult{
		Value:                value,
		Confidence:           confidence,
		Level:                level,
		RequiresConfirmation: requiresConfirmation,
		Alternatives:         FormatAlternatives(alternatives, 5),
		Explanation:          explanation,
		Source:               source,
		Timestamp:            time.Now().UTC(),
		AuditID:              auditID,
	}
}

// ShouldAskUser reports whether confirmation is required before acting on a
// value.  Legally sensitive content always requires confirmation.
func (g *Gate) ShouldAskUser(confidence float64, legalContent, hasAlternatives bool) bool {
	if legalContent {
		return true
	}
	if confidence < g.thresholds.Medium {
		return true
	}
	if confidence >= g.thresholds.High {
		return false
	}
	return hasAlternatives
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

// Combine merges weighted stage confidences into one score; the primary
// source is the stage with the highest individual confidence.
func Combine(parts []WeightedConfidence) (float64, Source) {
	if len(parts) == 0 {
		return 0, SourceFallback
	}
	totalWeight := 0.0
	weightedSum := 0.0
	best := parts[0]
	for _, p := range parts {
		totalWeight += p.Weight
		weightedSum += p.Confidence * p.Weight
		if p.Confidence > best.Confidence {
			best = p
		}
	}
	if totalWeight == 0 {
		return 0, SourceFallback
	}
	return weightedSum / totalWeight, best.Source
}

// WeightedConfidence is one stage's contribution to a combined score.
type WeightedConfidence struct {
	Confidence float64
	Source     Source
	Weight     float64
}

// FormatAlternatives sorts alternatives by confidence, keeps at most
// maxDisplay, and attaches rank explanations.
func FormatAlternatives(alternatives []Alternative, maxDisplay int) []RankedAlternative {
	sorted := make([]Alternative, len(alternatives))
	copy(sorted, alternatives)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})
	if len(sorted) > maxDisplay {
		sorted = sorted[:maxDisplay]
	}

	out := make([]RankedAlternative, 0, len(sorted))
	for i, alt := range sorted {
		label := alt.Label
		if label == "" {
			label = fmt.Sprintf("%v", alt.Value)
		}
		out = append(out, RankedAlternative{
			Rank:        i + 1,
			Value:       alt.Value,
			Confidence:  alt.Confidence,
			Label:       label,
			Explanation: explainAlternative(alt.Confidence, i+1),
		})
	}
	return out
}

func explainAlternative(confidence float64, rank int) string {
	switch {
	case confidence >= 0.9:
		return fmt.Sprintf("Option %d: Excellent match (%.0f%%)", rank, confidence*100)
	case confidence >= 0.7:
		return fmt.Sprintf("Option %d: Good match (%.0f%%)", rank, confidence*100)
	case confidence >= 0.5:
		return fmt.Sprintf("Option %d: Possible match (%.0f%%)", rank, confidence*100)
	default:
		return fmt.Sprintf("Option %d: Weak match (%.0f%%)", rank, confidence*100)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Audit trail
// ─────────────────────────────────────────────────────────────────────────────

// Entry is one recorded gating decision.
type Entry struct {
	AuditID      string    `json:"audit_id"`
	Timestamp    time.Time `json:"timestamp"`
	DecisionType string    `json:"decision_type"`
	Confidence   float64   `json:"confidence"`
	Source       Source    `json:"source"`
	Level        Level     `json:"confidence_level"`
	Summary      string    `json:"summary"`
}

// AuditTrail is a bounded in-memory log of gating decisions.  The oldest
// entry is dropped once capacity is reached.  Safe for concurrent use.
type AuditTrail struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

// NewAuditTrail builds a trail holding at most capacity entries.
func NewAuditTrail(capacity int) *AuditTrail {
	if capacity < 1 {
		capacity = 1
	}
	return &AuditTrail{capacity: capacity}
}

// Record appends an entry, stamping its id and time, and returns the id.
func (a *AuditTrail) Record(e Entry) string {
	e.AuditID = uuid.NewString()[:8]
	e.Timestamp = time.Now().UTC()
	if len(e.Summary) > 200 {
		e.Summary = e.Summary[:200]
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, e)
	if len(a.entries) > a.capacity {
		a.entries = a.entries[len(a.entries)-a.capacity:]
	}
	return e.AuditID
}

// Recent returns up to limit entries, newest last.
func (a *AuditTrail) Recent(limit int) []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	if limit <= 0 || limit > len(a.entries) {
		limit = len(a.entries)
	}
	out := make([]Entry, limit)
	copy(out, a.entries[len(a.entries)-limit:])
	return out
}

// Clear drops all entries.
func (a *AuditTrail) Clear() {
	a.mu.Lock()
	a.entries = nil
	a.mu.Unlock()
}
