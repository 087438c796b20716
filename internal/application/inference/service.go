package inference

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/turtacn/CivicDraft/internal/config"
	"github.com/turtacn/CivicDraft/internal/domain/classify"
	"github.com/turtacn/CivicDraft/internal/domain/confidence"
	"github.com/turtacn/CivicDraft/internal/domain/issue"
	"github.com/turtacn/CivicDraft/internal/domain/legal"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CivicDraft/internal/intelligence/nlp"
	"github.com/turtacn/CivicDraft/internal/intelligence/semantic"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

// Reference phrasings used by the semantic fallback to refine or corroborate
// a weak rule-engine result.
var (
	rtiIntentTemplates = []string{
		"I want to request information about government records",
		"Please provide copies of documents under RTI Act",
		"I am seeking information about public expenditure",
	}
	complaintIntentTemplates = []string{
		"I want to file a complaint about poor service",
		"I am facing problems with government department",
		"I want to report corruption and misconduct",
	}
)

// Service runs the inference pipeline.  Safe for concurrent use.
type Service struct {
	cfg        config.InferenceConfig
	classifier *classify.Classifier
	detector   *legal.Detector
	mapper     *issue.Mapper
	extractor  *nlp.Extractor
	matcher    *semantic.Matcher
	gate       *confidence.Gate
	metrics    *prometheus.AppMetrics
	logger     logging.Logger
}

// NewService wires the pipeline.  Nil stage components are replaced with
// defaults built from cfg; metrics may be nil.
func NewService(
	cfg config.InferenceConfig,
	classifier *classify.Classifier,
	detector *legal.Detector,
	mapper *issue.Mapper,
	extractor *nlp.Extractor,
	matcher *semantic.Matcher,
	gate *confidence.Gate,
	metrics *prometheus.AppMetrics,
	logger logging.Logger,
) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	logger = logger.Named("inference")

	if classifier == nil {
		classifier = classify.NewClassifier(classifyOptions(cfg), logger)
	}
	if detector == nil {
		detector = legal.NewDetector(logger)
	}
	if mapper == nil {
		mapper = issue.NewMapper(logger)
	}
	if extractor == nil {
		extractor = nlp.NewExtractor(logger)
	}
	if matcher == nil {
		matcher = semantic.NewMatcher(nil, config.DefaultCacheSize, logger)
	}
	if gate == nil {
		gate = confidence.NewGate(gateThresholds(cfg), cfg.AuditTrailSize, logger)
	}

	return &Service{
		cfg:        cfg,
		classifier: classifier,
		detector:   detector,
		mapper:     mapper,
		extractor:  extractor,
		matcher:    matcher,
		gate:       gate,
		metrics:    metrics,
		logger:     logger,
	}
}

func classifyOptions(cfg config.InferenceConfig) classify.Options {
	opts := classify.DefaultOptions()
	if cfg.AmbiguityFloor > 0 {
		opts.AmbiguityFloor = cfg.AmbiguityFloor
	}
	if cfg.AmbiguityMargin > 0 {
		opts.AmbiguityMargin = cfg.AmbiguityMargin
	}
	if cfg.AmbiguityCap > 0 {
		opts.AmbiguityCap = cfg.AmbiguityCap
	}
	if cfg.NLPThreshold > 0 {
		opts.NLPThreshold = cfg.NLPThreshold
	}
	return opts
}

func gateThresholds(cfg config.InferenceConfig) confidence.Thresholds {
	t := confidence.DefaultThresholds()
	if cfg.HighThreshold > 0 {
		t.High = cfg.HighThreshold
	}
	if cfg.MediumThreshold > 0 {
		t.Medium = cfg.MediumThreshold
	}
	if cfg.LowThreshold > 0 {
		t.Low = cfg.LowThreshold
	}
	if cfg.NLPThreshold > 0 {
		t.UseNLPBelow = cfg.NLPThreshold
	}
	if cfg.SemanticThreshold > 0 {
		t.UseSemanticBelow = cfg.SemanticThreshold
	}
	return t
}

// Audit returns the gate's audit trail of recent decisions.
func (s *Service) Audit() *confidence.AuditTrail { return s.gate.Audit() }

// Run executes the pipeline: rule engine first, entity extraction always,
// semantic matching only when the gated confidence is still low.
func (s *Service) Run(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	if err := s.validate(req); err != nil {
		prometheus.RecordError(s.metrics, "inference", string(errors.GetCode(err)))
		return Result{}, err
	}

	var path []string

	// Rule engine is the primary decision layer.
	path = append(path, "Rule Engine")
	stageStart := time.Now()
	ruled := s.classifier.Classify(req.Text)
	prometheus.RecordStage(s.metrics, "rule_engine", time.Since(stageStart))
	intent := ruled.Intent

	legalAnalysis := s.detector.Analyze(req.Text)
	path = append(path, fmt.Sprintf("Legal Triggers (%d RTI, %d Grievance)",
		len(legalAnalysis.RTISections), len(legalAnalysis.GrievanceMarkers)))

	issues := s.mapper.Map(req.Text)

	// Entity extraction always runs; its output feeds drafting even when
	// the rule engine is confident.
	path = append(path, "Entity Extraction")
	stageStart = time.Now()
	analysis := s.extractor.Analyze(req.Text)
	prometheus.RecordStage(s.metrics, "entity_extraction", time.Since(stageStart))

	// Corroboration: legal triggers agreeing with the intent raise
	// confidence before the gate decides anything.
	path = append(path, "Confidence Gate")
	adjusted := ruled.Confidence
	if intent == classify.IntentRTI && len(legalAnalysis.RTISections) > 0 {
		adjusted = s.capCeiling(adjusted + s.cfg.ContextBoost)
		path = append(path, fmt.Sprintf("RTI sections confirmed (+%.0f%%)", s.cfg.ContextBoost*100))
	}
	if intent == classify.IntentComplaint && len(legalAnalysis.GrievanceMarkers) > 0 {
		adjusted = s.capCeiling(adjusted + s.cfg.ContextBoost)
		path = append(path, fmt.Sprintf("Grievance markers confirmed (+%.0f%%)", s.cfg.ContextBoost*100))
	}

	if ruled.Ambiguous {
		prometheus.RecordAmbiguousIntent(s.metrics)
	}

	// Semantic matching runs only when confidence is still low.
	source := confidence.SourceRuleEngine
	if s.gate.ShouldEscalateToSemantic(adjusted) {
		prometheus.RecordEscalation(s.metrics, "semantic")
		intent, adjusted, source = s.semanticRefine(ctx, req.Text, intent, adjusted, &path)
	} else {
		path = append(path, "Semantic skipped (confidence sufficient)")
	}

	docType, docConf := determineDocumentType(req.Text, intent)
	path = append(path, fmt.Sprintf("Document type: %s", docType))

	var alternatives []confidence.Alternative
	if intent == classify.IntentUnknown {
		for _, cand := range []classify.Intent{classify.IntentRTI, classify.IntentComplaint, classify.IntentAppeal} {
			alternatives = append(alternatives, confidence.Alternative{
				Value:      string(cand),
				Label:      cand.Description(),
				Confidence: ruled.Scores[cand],
			})
		}
	}
	// Critical legal findings force user confirmation regardless of score.
	sensitive := legalAnalysis.OverallSeverity == legal.SeverityCritical
	gated := s.gate.Gate(string(intent), adjusted, source, alternatives, truncate(req.Text, 100), sensitive)
	if gated.RequiresConfirmation {
		prometheus.RecordConfirmationNeeded(s.metrics, string(gated.Level))
	}

	suggestions := s.buildSuggestions(intent, analysis, legalAnalysis)
	explanation := buildExplanation(path, adjusted)

	prometheus.RecordInference(s.metrics, string(intent), string(gated.Level), time.Since(start))
	s.logger.Info("inference complete",
		logging.String("intent", string(intent)),
		logging.Float64("confidence", adjusted),
		logging.String("level", string(gated.Level)),
		logging.String("document_type", string(docType)),
		logging.Duration("elapsed", time.Since(start)))

	return Result{
		Intent:                 intent,
		SubType:                ruled.SubType,
		DocumentType:           docType,
		DocumentTypeConfidence: docConf,
		Confidence:             adjusted,
		Level:                  gated.Level,
		RequiresConfirmation:   gated.RequiresConfirmation,
		Alternatives:           gated.Alternatives,
		Entities:               analysis.Entities,
		KeyPhrases:             analysis.KeyPhrases,
		Sentiment:              analysis.Sentiment,
		Urgency:                analysis.Urgency,
		Legal:                  legalAnalysis,
		Issues:                 issues,
		Suggestions:            suggestions,
		Explanation:            explanation,
		DecisionPath:           path,
		AuditID:                gated.AuditID,
	}, nil
}

// semanticRefine runs the semantic matcher within its time budget.  An
// unknown intent adopts the winning template type when it clears the adopt
// threshold; a known intent only gets a bounded confidence boost.  Any
// failure degrades gracefully back to the rule-engine result.
func (s *Service) semanticRefine(
	ctx context.Context,
	text string,
	intent classify.Intent,
	adjusted float64,
	path *[]string,
) (classify.Intent, float64, confidence.Source) {
	budget := s.cfg.SemanticBudget
	if budget <= 0 {
		budget = config.DefaultSemanticBudget
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	stageStart := time.Now()
	maxRTI, err := s.maxSimilarity(ctx, text, rtiIntentTemplates)
	if err == nil {
		var maxComplaint float64
		maxComplaint, err = s.maxSimilarity(ctx, text, complaintIntentTemplates)
		if err == nil {
			prometheus.RecordStage(s.metrics, "semantic", time.Since(stageStart))
			*path = append(*path, "Semantic (similarity match)")

			if intent == classify.IntentUnknown {
				switch {
				case maxRTI > maxComplaint && maxRTI > s.cfg.AdoptThreshold:
					*path = append(*path, fmt.Sprintf("Semantic suggests RTI (%.2f)", maxRTI))
					return classify.IntentRTI, maxRTI * s.cfg.SemanticDiscount, confidence.SourceSemantic
				case maxComplaint > maxRTI && maxComplaint > s.cfg.AdoptThreshold:
					*path = append(*path, fmt.Sprintf("Semantic suggests Complaint (%.2f)", maxComplaint))
					return classify.IntentComplaint, maxComplaint * s.cfg.SemanticDiscount, confidence.SourceSemantic
				default:
					*path = append(*path, "Semantic inconclusive")
					return intent, adjusted, confidence.SourceRuleEngine
				}
			}

			boost := maxRTI
			if maxComplaint > boost {
				boost = maxComplaint
			}
			boost *= s.cfg.SemanticBoostFactor
			boosted := adjusted + boost
			if boosted > s.cfg.SemanticBoostCap {
				boosted = s.cfg.SemanticBoostCap
			}
			*path = append(*path, fmt.Sprintf("Semantic boosted confidence (+%.2f)", boost))
			return intent, boosted, confidence.SourceRuleEngine
		}
	}

	if ctx.Err() != nil {
		prometheus.RecordSemanticBudgetExceeded(s.metrics)
	}
	prometheus.RecordStageDegraded(s.metrics, "semantic")
	s.logger.Warn("semantic stage failed, continuing with rule-engine result", logging.Err(err))
	*path = append(*path, "Semantic skipped (error)")
	return intent, adjusted, confidence.SourceRuleEngine
}

func (s *Service) maxSimilarity(ctx context.Context, text string, templates []string) (float64, error) {
	best := 0.0
	for _, tmpl := range templates {
		sim, err := s.matcher.Similarity(ctx, text, tmpl)
		if err != nil {
			return 0, err
		}
		if sim > best {
			best = sim
		}
	}
	return best, nil
}

func (s *Service) validate(req Request) error {
	length := utf8.RuneCountInString(strings.TrimSpace(req.Text))
	if length < s.cfg.MinInputLength {
		return errors.New(errors.CodeTextTooShort,
			fmt.Sprintf("input must be at least %d characters, got %d", s.cfg.MinInputLength, length))
	}
	if length > s.cfg.MaxInputLength {
		return errors.New(errors.CodeTextTooLong,
			fmt.Sprintf("input must be at most %d characters, got %d", s.cfg.MaxInputLength, length))
	}
	return nil
}

func (s *Service) capCeiling(v float64) float64 {
	if v > s.cfg.ConfidenceCeiling {
		return s.cfg.ConfidenceCeiling
	}
	return v
}

// buildSuggestions assembles user-facing hints from what the pipeline saw
// and what it could not find.
func (s *Service) buildSuggestions(intent classify.Intent, analysis nlp.Result, legalAnalysis legal.Analysis) []string {
	var out []string

	if len(analysis.ByType(nlp.EntityDate)) == 0 && intent == classify.IntentRTI {
		out = append(out, "Consider specifying the time period for your information request (e.g., 'from January 2024 to December 2024')")
	}
	if len(analysis.ByType(nlp.EntityOrganization)) == 0 && len(analysis.MatchedPhrases.Departments) == 0 {
		out = append(out, "Mentioning the specific department or office name will help route your application correctly")
	}

	switch intent {
	case classify.IntentRTI:
		if len(legalAnalysis.RTISections) == 0 {
			out = append(out, "Your request will be filed under Section 6(1) of the RTI Act, 2005")
		}
		out = append(out, "RTI fee of Rs. 10 is applicable. Payment modes: IPO, DD, or online (state-specific)")
	case classify.IntentComplaint:
		for _, m := range legalAnalysis.GrievanceMarkers {
			if m.Severity == legal.SeverityHigh || m.Severity == legal.SeverityCritical {
				out = append(out, "Your complaint indicates serious issues. Consider also filing with anti-corruption helpline or vigilance department")
				break
			}
		}
	case classify.IntentAppeal:
		out = append(out,
			"First appeal must be filed within 30 days of receiving the response (or 30 days after expected response date)",
			"Second appeal to Information Commission is available if first appeal is rejected")
	}

	return out
}

func buildExplanation(path []string, conf float64) string {
	var level string
	switch {
	case conf >= 0.9:
		level = "high confidence"
	case conf >= 0.7:
		level = "medium confidence"
	case conf >= 0.5:
		level = "low confidence"
	default:
		level = "very low confidence"
	}
	return fmt.Sprintf("Decision made with %s (%.0f%%). Path: %s", level, conf*100, strings.Join(path, " > "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
