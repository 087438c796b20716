package enhance

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/turtacn/CivicDraft/internal/config"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

// Placeholder tokens that must survive enhancement verbatim: unfilled
// template slots like {TIME_PERIOD} and bracketed fill-in markers like
// [Department Address].
var (
	curlyTokenRe   = regexp.MustCompile(`\{[A-Z_]+\}`)
	bracketTokenRe = regexp.MustCompile(`\[[^\[\]\n]+\]`)
)

// Result reports an enhancement with full transparency: both texts are
// always present so the caller can show the user exactly what changed.
type Result struct {
	OriginalText string    `json:"original_text"`
	EnhancedText string    `json:"enhanced_text"`
	WasEnhanced  bool      `json:"was_enhanced"`
	Mode         Mode      `json:"enhancement_mode"`
	Summary      string    `json:"changes_summary"`
	TokensUsed   int       `json:"tokens_used"`
	ModelUsed    string    `json:"model_used"`
	Timestamp    time.Time `json:"timestamp"`
}

// Service wraps a backend Enhancer with the safety rules: a disabled or
// failing backend degrades to the original text, and any draft whose
// placeholder tokens do not survive intact is rejected.
type Service struct {
	cfg     config.EnhanceConfig
	backend Enhancer
	logger  logging.Logger
}

// NewService builds the enhancement service.  A nil backend or a disabled
// config yields a service that returns drafts verbatim.  A nil logger falls
// back to a no-op logger.
func NewService(cfg config.EnhanceConfig, backend Enhancer, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{
		cfg:     cfg,
		backend: backend,
		logger:  logger.Named("enhance"),
	}
}

// Enabled reports whether enhancement will actually run.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled && s.backend != nil
}

// EnhanceDraft improves a draft's language.  The returned Result always
// carries usable text.  A non-nil error explains why enhancement was not
// applied; the Result then contains the original text unchanged.
func (s *Service) EnhanceDraft(ctx context.Context, text string, mode Mode, req Request) (*Result, error) {
	result := &Result{
		OriginalText: text,
		EnhancedText: text,
		Mode:         mode,
		Timestamp:    time.Now(),
	}

	if !s.Enabled() {
		result.Summary = "enhancement not available"
		result.ModelUsed = "none"
		return result, nil
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req.Text = text
	req.Mode = mode
	resp, err := s.backend.Enhance(ctx, req)
	if err != nil {
		s.logger.Warn("enhancement backend failed, keeping original",
			logging.String("mode", string(mode)), logging.Err(err))
		result.Summary = "enhancement failed, using original"
		result.ModelUsed = s.backend.Name()
		return result, errors.Wrap(err, errors.CodeEnhanceFailed, "enhancement backend failed")
	}

	if lost := lostTokens(text, resp.Text); len(lost) > 0 {
		s.logger.Warn("enhancement dropped placeholder tokens, reverting",
			logging.String("mode", string(mode)),
			logging.Int("lost", len(lost)),
		)
		result.Summary = "enhancement reverted: placeholders were modified"
		result.ModelUsed = resp.Model
		result.TokensUsed = resp.TokensUsed
		return result, errors.New(errors.CodePlaceholderLost,
			"enhanced text lost placeholder "+lost[0])
	}

	result.EnhancedText = resp.Text
	result.WasEnhanced = resp.Text != text
	result.ModelUsed = resp.Model
	result.TokensUsed = resp.TokensUsed
	result.Summary = summarize(resp, result.WasEnhanced)
	return result, nil
}

// ModeFor picks the enhancement mode the way the draft flow does: a target
// language wins, then a non-neutral tone, then a plain polish.
func ModeFor(language, tone string) Mode {
	switch {
	case language != "" && language != "english":
		return ModeTranslate
	case tone != "" && tone != "neutral":
		return ModeToneAdjust
	default:
		return ModePolish
	}
}

func summarize(resp Response, changed bool) string {
	switch {
	case len(resp.Changes) > 0:
		out := resp.Changes[0]
		for _, c := range resp.Changes[1:] {
			out += "; " + c
		}
		return out
	case !changed:
		return "no changes needed"
	default:
		return "text polished for clarity"
	}
}

// lostTokens returns the placeholder tokens present in before but absent
// from after, in first-occurrence order.
func lostTokens(before, after string) []string {
	var lost []string
	seen := map[string]bool{}
	for _, re := range []*regexp.Regexp{curlyTokenRe, bracketTokenRe} {
		for _, token := range re.FindAllString(before, -1) {
			if seen[token] {
				continue
			}
			seen[token] = true
			if !strings.Contains(after, token) {
				lost = append(lost, token)
			}
		}
	}
	return lost
}
