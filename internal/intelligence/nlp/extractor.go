package nlp

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// Extraction confidences
// ─────────────────────────────────────────────────────────────────────────────

const (
	gazetteerConfidence = 0.95
	emailConfidence     = 0.95
	phoneConfidence     = 0.90
	moneyConfidence     = 0.90
	dateConfidence      = 0.85
	referenceConfidence = 0.80
)

// ─────────────────────────────────────────────────────────────────────────────
// Compiled patterns
// ─────────────────────────────────────────────────────────────────────────────

var (
	// Indian mobile numbers, optionally prefixed with +91.
	phonePattern = regexp.MustCompile(`(?:\+91[\s-]?)?[6-9]\d{9}`)

	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// "Ref. No. ABC/123/2024", "Complaint ID: 456" and similar.
	referencePattern = regexp.MustCompile(`(?i)(?:ref|reference|complaint|application)[\s.:#-]*(?:no|number|id)?[\s.:#-]*([A-Z0-9/-]+)`)

	// Bare structured codes like "PGRS/8821/2024" or "2024/RTI/17".
	refCodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z]{2,}/\d+/\d{4}\b`),
		regexp.MustCompile(`\b\d{4}/[A-Z]+/\d+\b`),
	}

	// Numeric dates like "12/01/2024" or "12-1-24", and month-name dates
	// like "January 2024" or "15 March 2024".
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
		regexp.MustCompile(`(?i)\b(?:\d{1,2}(?:st|nd|rd|th)?\s+)?` +
			`(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|` +
			`jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)` +
			`\s+\d{4}\b`),
	}

	// Amounts like "Rs. 50,000", "₹2500", "INR 1,00,000" or "50 lakhs".
	moneyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:₹|\brs\.?|\binr)\s*\d[\d,]*(?:\.\d+)?`),
		regexp.MustCompile(`(?i)\b\d[\d,]*(?:\.\d+)?\s*(?:rupees|lakhs?|crores?)\b`),
	}
)

type gazetteerEntry struct {
	display string
	pattern *regexp.Regexp
}

func compileGazetteer(terms []string) []gazetteerEntry {
	out := make([]gazetteerEntry, 0, len(terms))
	for _, term := range terms {
		out = append(out, gazetteerEntry{
			display: titleCase(term),
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`),
		})
	}
	return out
}

func compilePhrases(terms []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "and" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ─────────────────────────────────────────────────────────────────────────────
// Extractor
// ─────────────────────────────────────────────────────────────────────────────

// Extractor runs the full pattern-based analysis.  Safe for concurrent use
// once constructed.
type Extractor struct {
	states []gazetteerEntry
	cities []gazetteerEntry

	departmentRes []*regexp.Regexp
	rtiTermRes    []*regexp.Regexp
	complaintRes  []*regexp.Regexp

	logger logging.Logger
}

// NewExtractor compiles all gazetteers and patterns.
func NewExtractor(logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Extractor{
		states:        compileGazetteer(indianStates),
		cities:        compileGazetteer(indianCities),
		departmentRes: compilePhrases(departmentPhrases),
		rtiTermRes:    compilePhrases(rtiTermPhrases),
		complaintRes:  compilePhrases(complaintMarkerPhrases),
		logger:        logger.Named("nlp"),
	}
}

// Analyze runs the complete pipeline and returns the result with its audit
// trail.
func (e *Extractor) Analyze(text string) Result {
	start := time.Now()

	entities := e.Entities(text)
	keyPhrases := e.KeyPhrases(text, 10)
	matched := e.MatchPhrases(text)
	sentiment := AnalyzeSentiment(text)
	urgency, urgencyConf := AnalyzeUrgency(text)
	wordCount := len(strings.Fields(text))

	steps := []Step{
		{Name: "tokenization", Count: wordCount},
		{Name: "entity_extraction", Count: len(entities)},
		{Name: "phrase_extraction", Count: len(keyPhrases)},
		{Name: "sentiment_analysis", Detail: string(sentiment)},
		{Name: "urgency_analysis", Detail: fmt.Sprintf("%s (%.2f)", urgency, urgencyConf)},
		{Name: "phrase_matching", Count: len(matched.Departments) + len(matched.RTITerms) + len(matched.ComplaintMarkers)},
	}

	elapsed := time.Since(start)
	e.logger.Debug("analysis complete",
		logging.Int("entities", len(entities)),
		logging.String("sentiment", string(sentiment)),
		logging.String("urgency", string(urgency)),
		logging.Duration("elapsed", elapsed))

	return Result{
		Entities:          entities,
		KeyPhrases:        keyPhrases,
		MatchedPhrases:    matched,
		Sentiment:         sentiment,
		Urgency:           urgency,
		UrgencyConfidence: urgencyConf,
		WordCount:         wordCount,
		ProcessingTime:    elapsed,
		Steps:             steps,
	}
}

// Entities extracts all entities, deduplicated by character span.
func (e *Extractor) Entities(text string) []Entity {
	var entities []Entity

	for _, g := range e.states {
		for _, loc := range g.pattern.FindAllStringIndex(text, -1) {
			entities = append(entities, Entity{
				Text:       g.display,
				Type:       EntityLocation,
				Confidence: gazetteerConfidence,
				Start:      loc[0],
				End:        loc[1],
				Source:     "gazetteer_state",
			})
		}
	}
	for _, g := range e.cities {
		for _, loc := range g.pattern.FindAllStringIndex(text, -1) {
			entities = append(entities, Entity{
				Text:       g.display,
				Type:       EntityLocation,
				Confidence: gazetteerConfidence,
				Start:      loc[0],
				End:        loc[1],
				Source:     "gazetteer_city",
			})
		}
	}

	for _, loc := range phonePattern.FindAllStringIndex(text, -1) {
		entities = append(entities, Entity{
			Text:       text[loc[0]:loc[1]],
			Type:       EntityPhone,
			Confidence: phoneConfidence,
			Start:      loc[0],
			End:        loc[1],
			Source:     "regex_phone",
		})
	}

	for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
		entities = append(entities, Entity{
			Text:       text[loc[0]:loc[1]],
			Type:       EntityEmail,
			Confidence: emailConfidence,
			Start:      loc[0],
			End:        loc[1],
			Source:     "regex_email",
		})
	}

	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			entities = append(entities, Entity{
				Text:       text[loc[0]:loc[1]],
				Type:       EntityDate,
				Confidence: dateConfidence,
				Start:      loc[0],
				End:        loc[1],
				Source:     "regex_date",
			})
		}
	}

	for _, re := range moneyPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			entities = append(entities, Entity{
				Text:       text[loc[0]:loc[1]],
				Type:       EntityMoney,
				Confidence: moneyConfidence,
				Start:      loc[0],
				End:        loc[1],
				Source:     "regex_money",
			})
		}
	}

	for _, loc := range referencePattern.FindAllSubmatchIndex([]byte(text), -1) {
		// Capture group span, not the whole match.
		start, end := loc[2], loc[3]
		if start < 0 {
			continue
		}
		entities = append(entities, Entity{
			Text:       strings.ToUpper(text[start:end]),
			Type:       EntityReferenceNumber,
			Confidence: referenceConfidence,
			Start:      start,
			End:        end,
			Source:     "regex_reference",
		})
	}
	for _, re := range refCodePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			entities = append(entities, Entity{
				Text:       text[loc[0]:loc[1]],
				Type:       EntityReferenceNumber,
				Confidence: referenceConfidence,
				Start:      loc[0],
				End:        loc[1],
				Source:     "regex_reference",
			})
		}
	}

	return dedupeBySpan(entities)
}

func dedupeBySpan(entities []Entity) []Entity {
	type span struct{ start, end int }
	seen := make(map[span]struct{}, len(entities))
	out := entities[:0]
	for _, ent := range entities {
		key := span{ent.Start, ent.End}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ent)
	}
	return out
}

// KeyPhrases returns up to topN notable phrases: civic phrase matches first,
// then remaining long words, deduplicated and lowercased.
func (e *Extractor) KeyPhrases(text string, topN int) []string {
	seen := make(map[string]struct{})
	var phrases []string

	add := func(p string) {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		phrases = append(phrases, p)
	}

	matched := e.MatchPhrases(text)
	for _, p := range matched.RTITerms {
		add(p)
	}
	for _, p := range matched.Departments {
		add(p)
	}
	for _, p := range matched.ComplaintMarkers {
		add(p)
	}

	for _, word := range strings.Fields(text) {
		word = strings.Trim(strings.ToLower(word), ".,;:!?()\"'")
		if len(word) <= 4 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		add(word)
	}

	if len(phrases) > topN {
		phrases = phrases[:topN]
	}
	return phrases
}

// MatchPhrases finds civic-specific phrases grouped by category.
func (e *Extractor) MatchPhrases(text string) MatchedPhrases {
	matchGroup := func(res []*regexp.Regexp, terms []string) []string {
		var out []string
		for i, re := range res {
			if re.MatchString(text) {
				out = append(out, terms[i])
			}
		}
		return out
	}
	return MatchedPhrases{
		Departments:      matchGroup(e.departmentRes, departmentPhrases),
		RTITerms:         matchGroup(e.rtiTermRes, rtiTermPhrases),
		ComplaintMarkers: matchGroup(e.complaintRes, complaintMarkerPhrases),
	}
}
