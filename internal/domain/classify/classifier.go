package classify

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

// Scoring constants intrinsic to the weighted-keyword model.  Tunable
// decision thresholds live in Options instead.
const (
	baseConfidence = 0.4
	bonusPerMatch  = 0.02
	maxMatchBonus  = 0.1
	scoreCap       = 0.95
)

// Options carries the decision thresholds of the classifier.
type Options struct {
	// AmbiguityFloor is the minimum score an intent must reach to count as
	// a contender; AmbiguityMargin is the maximum gap between the top two
	// contenders before the result is considered ambiguous and capped at
	// AmbiguityCap.
	AmbiguityFloor  float64
	AmbiguityMargin float64
	AmbiguityCap    float64

	// UnknownFloor is the score below which the result degrades to
	// IntentUnknown.
	UnknownFloor float64

	// NLPThreshold marks results that should be enriched by the entity
	// extraction stage.
	NLPThreshold float64
}

// DefaultOptions returns the production thresholds.
func DefaultOptions() Options {
	return Options{
		AmbiguityFloor:  0.5,
		AmbiguityMargin: 0.1,
		AmbiguityCap:    0.6,
		UnknownFloor:    0.3,
		NLPThreshold:    0.7,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Classifier
// ─────────────────────────────────────────────────────────────────────────────

type compiledKeyword struct {
	phrase string
	weight float64
	re     *regexp.Regexp
}

type intentTable struct {
	intent   Intent
	patterns []compiledKeyword
}

// Classifier scores a submission against every intent's keyword table and
// returns the best match with a full decision trail.  It is stateless after
// construction and safe for concurrent use.
type Classifier struct {
	opts   Options
	tables []intentTable
	logger logging.Logger
}

// NewClassifier compiles all keyword tables and returns a ready Classifier.
func NewClassifier(opts Options, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Classifier{
		opts: opts,
		tables: []intentTable{
			{IntentRTI, compileKeywords(rtiKeywords)},
			{IntentComplaint, compileKeywords(complaintKeywords)},
			{IntentAppeal, compileKeywords(appealKeywords)},
			{IntentFollowUp, compileKeywords(followUpKeywords)},
			{IntentEscalation, compileKeywords(escalationKeywords)},
		},
		logger: logger.Named("classify"),
	}
}

// compileKeywords builds the match patterns: single words get word-boundary
// anchors, phrases match as literal substrings.
func compileKeywords(kws []keyword) []compiledKeyword {
	out := make([]compiledKeyword, 0, len(kws))
	for _, kw := range kws {
		pattern := regexp.QuoteMeta(kw.phrase)
		if !strings.Contains(kw.phrase, " ") {
			pattern = `\b` + pattern + `\b`
		}
		out = append(out, compiledKeyword{
			phrase: kw.phrase,
			weight: kw.weight,
			re:     regexp.MustCompile(pattern),
		})
	}
	return out
}

// findMatches returns every keyword hit in text with its position.
func findMatches(text string, patterns []compiledKeyword, category string) []Match {
	var matches []Match
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{
				Keyword:  p.phrase,
				Category: category,
				Weight:   p.weight,
				Position: loc[0],
			})
		}
	}
	return matches
}

// score converts a match set into a confidence value: a fixed base plus the
// summed weights plus a small per-match bonus, capped below certainty.
func score(matches []Match) float64 {
	if len(matches) == 0 {
		return 0
	}
	total := 0.0
	for _, m := range matches {
		total += m.Weight
	}
	bonus := float64(len(matches)) * bonusPerMatch
	if bonus > maxMatchBonus {
		bonus = maxMatchBonus
	}
	conf := baseConfidence + total + bonus
	if conf > scoreCap {
		conf = scoreCap
	}
	return conf
}

// Classify runs the full weighted-keyword pass over text and returns the
// winning intent with its sub-type, score map and decision trail.
func (c *Classifier) Classify(text string) Result {
	lower := strings.ToLower(text)

	var path []string
	scores := make(map[Intent]float64, len(c.tables))
	matchSets := make(map[Intent][]Match, len(c.tables))

	bestIntent := c.tables[0].intent
	bestScore := -1.0
	for _, tbl := range c.tables {
		matches := findMatches(lower, tbl.patterns, string(tbl.intent))
		s := score(matches)
		scores[tbl.intent] = s
		matchSets[tbl.intent] = matches
		path = append(path, fmt.Sprintf("found %d %s matches", len(matches), tbl.intent))
		// Strict comparison keeps the earlier table on ties, so intent
		// priority follows table order.
		if s > bestScore {
			bestIntent = tbl.intent
			bestScore = s
		}
	}
	path = append(path, fmt.Sprintf("best intent: %s with score %.2f", bestIntent, bestScore))

	// Ambiguity: two contenders above the floor within the margin cap the
	// winner's confidence.
	ambiguous := false
	contenders := make([]Intent, 0, len(c.tables))
	for _, tbl := range c.tables {
		if scores[tbl.intent] > c.opts.AmbiguityFloor {
			contenders = append(contenders, tbl.intent)
		}
	}
	if len(contenders) > 1 {
		sort.SliceStable(contenders, func(i, j int) bool {
			return scores[contenders[i]] > scores[contenders[j]]
		})
		if scores[contenders[0]]-scores[contenders[1]] < c.opts.AmbiguityMargin {
			if bestScore > c.opts.AmbiguityCap {
				bestScore = c.opts.AmbiguityCap
			}
			ambiguous = true
			path = append(path, fmt.Sprintf("ambiguous: %s vs %s", contenders[0], contenders[1]))
		}
	}

	matches := matchSets[bestIntent]
	if bestScore < c.opts.UnknownFloor {
		bestIntent = IntentUnknown
		matches = nil
		path = append(path, "score too low - marking as unknown")
	}

	subType := determineSubType(lower, bestIntent)
	path = append(path, fmt.Sprintf("sub-type determined: %s", subType))

	requiresNLP := bestScore < c.opts.NLPThreshold
	if requiresNLP {
		path = append(path, "low confidence - entity extraction recommended")
	}

	c.logger.Debug("intent classified",
		logging.String("intent", string(bestIntent)),
		logging.Float64("confidence", bestScore),
		logging.Int("matches", len(matches)),
		logging.Bool("ambiguous", ambiguous))

	return Result{
		Intent:       bestIntent,
		SubType:      subType,
		Confidence:   bestScore,
		Matches:      matches,
		Scores:       scores,
		DecisionPath: path,
		RequiresNLP:  requiresNLP,
		Ambiguous:    ambiguous,
	}
}

// determineSubType refines the winning intent by scanning for sub-type
// indicator phrases.
func determineSubType(lower string, intent Intent) SubType {
	containsAny := func(st SubType) bool {
		for _, ind := range subTypeIndicators[st] {
			if strings.Contains(lower, ind) {
				return true
			}
		}
		return false
	}

	switch intent {
	case IntentRTI:
		for _, st := range []SubType{SubTypeInspectionRequest, SubTypeRecordsRequest, SubTypeInformationRequest} {
			if containsAny(st) {
				return st
			}
		}
		return SubTypeInformationRequest
	case IntentComplaint:
		if containsAny(SubTypeCorruptionComplaint) {
			return SubTypeCorruptionComplaint
		}
		if containsAny(SubTypeServiceComplaint) {
			return SubTypeServiceComplaint
		}
		return SubTypeGrievance
	case IntentAppeal:
		if containsAny(SubTypeSecondAppeal) {
			return SubTypeSecondAppeal
		}
		return SubTypeFirstAppeal
	default:
		return SubTypeGeneral
	}
}

// Suggestions returns the topN scoring intents for user selection.  A manual
// fallback entry is appended when nothing scores convincingly.
func (c *Classifier) Suggestions(text string, topN int) []Suggestion {
	lower := strings.ToLower(text)

	type scored struct {
		intent Intent
		score  float64
	}
	all := make([]scored, 0, len(c.tables))
	for _, tbl := range c.tables {
		all = append(all, scored{tbl.intent, score(findMatches(lower, tbl.patterns, string(tbl.intent)))})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })

	var out []Suggestion
	for _, s := range all {
		if len(out) >= topN {
			break
		}
		if s.score > 0 {
			out = append(out, Suggestion{
				Intent:      s.intent,
				Confidence:  s.score,
				Description: s.intent.Description(),
			})
		}
	}

	if len(out) == 0 || out[0].Confidence < 0.5 {
		out = append(out, Suggestion{
			Intent:      "manual",
			Confidence:  0,
			Description: "Let me specify the document type manually",
		})
	}
	return out
}

// RequiredFields lists the inputs needed to complete a document for the
// given intent.  Contact fields are always required.
func RequiredFields(intent Intent) []Field {
	base := []Field{
		{Name: "applicant_name", Label: "Your Name", Required: true},
		{Name: "address", Label: "Address", Required: true},
		{Name: "contact", Label: "Phone/Email", Required: true},
	}

	switch intent {
	case IntentRTI:
		return append(base,
			Field{Name: "authority", Label: "Public Authority", Required: true},
			Field{Name: "information_sought", Label: "Information Required", Required: true},
			Field{Name: "period", Label: "Time Period (if applicable)", Required: false},
		)
	case IntentComplaint:
		return append(base,
			Field{Name: "department", Label: "Department", Required: true},
			Field{Name: "issue_description", Label: "Issue Description", Required: true},
			Field{Name: "incident_date", Label: "Date of Incident", Required: false},
			Field{Name: "previous_complaints", Label: "Previous Complaint References", Required: false},
		)
	case IntentAppeal:
		return append(base,
			Field{Name: "original_application", Label: "Original RTI Application No.", Required: true},
			Field{Name: "pio_response", Label: "PIO Response (if any)", Required: false},
			Field{Name: "grounds_for_appeal", Label: "Grounds for Appeal", Required: true},
		)
	default:
		return base
	}
}
