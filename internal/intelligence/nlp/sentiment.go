package nlp

import (
	"regexp"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sentiment
// ─────────────────────────────────────────────────────────────────────────────

// AnalyzeSentiment classifies tone by keyword counting.  Two or more hits in
// a group decide the tone outright; a single urgent or frustrated hit still
// wins over neutral.
func AnalyzeSentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	count := func(words []string) int {
		n := 0
		for _, w := range words {
			if strings.Contains(lower, w) {
				n++
			}
		}
		return n
	}

	urgent := count(urgentWords)
	frustrated := count(frustratedWords)
	formal := count(formalWords)

	switch {
	case urgent >= 2:
		return SentimentUrgent
	case frustrated >= 2:
		return SentimentFrustrated
	case formal >= 2:
		return SentimentFormal
	case urgent > 0:
		return SentimentUrgent
	case frustrated > 0:
		return SentimentFrustrated
	default:
		return SentimentNeutral
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Urgency
// ─────────────────────────────────────────────────────────────────────────────

var criticalUrgencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`life.{0,20}(?:risk|danger|threat)`),
	regexp.MustCompile(`medical.{0,10}emergency`),
	regexp.MustCompile(`immediate.{0,10}(?:action|attention)`),
	regexp.MustCompile(`(?:dying|death|dead)`),
	regexp.MustCompile(`(?:harassment|assault|attack)`),
}

var highUrgencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`urgent(?:ly)?`),
	regexp.MustCompile(`as soon as possible`),
	regexp.MustCompile(`asap`),
	regexp.MustCompile(`time.{0,10}sensitive`),
	regexp.MustCompile(`deadline`),
	regexp.MustCompile(`pending.{0,10}(?:months|years)`),
}

var mediumUrgencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:weeks?|days?).{0,10}(?:waiting|pending)`),
	regexp.MustCompile(`follow.{0,5}up`),
	regexp.MustCompile(`reminder`),
	regexp.MustCompile(`no.{0,10}response`),
}

// AnalyzeUrgency scores how quickly the matter needs attention.  Any
// critical pattern match dominates; otherwise high and medium matches are
// weighed together.
func AnalyzeUrgency(text string) (Urgency, float64) {
	lower := strings.ToLower(text)

	countMatches := func(patterns []*regexp.Regexp) int {
		n := 0
		for _, re := range patterns {
			if re.MatchString(lower) {
				n++
			}
		}
		return n
	}

	critical := countMatches(criticalUrgencyPatterns)
	high := countMatches(highUrgencyPatterns)
	medium := countMatches(mediumUrgencyPatterns)

	switch {
	case critical > 0:
		return UrgencyCritical, capAt(0.95, 0.7+float64(critical)*0.1)
	case high >= 2:
		return UrgencyHigh, capAt(0.9, 0.6+float64(high)*0.1)
	case high > 0 || medium >= 2:
		return UrgencyMedium, capAt(0.85, 0.5+float64(high+medium)*0.1)
	default:
		return UrgencyLow, 0.7
	}
}

func capAt(limit, v float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
