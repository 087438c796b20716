package enhance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/config"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

type stubBackend struct {
	resp Response
	err  error
}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Enhance(_ context.Context, _ Request) (Response, error) {
	return s.resp, s.err
}

func enabledCfg() config.EnhanceConfig {
	return config.EnhanceConfig{Enabled: true}
}

func TestEnhanceDisabledReturnsOriginal(t *testing.T) {
	svc := NewService(config.EnhanceConfig{Enabled: false}, NewRuleBased(), nil)
	assert.False(t, svc.Enabled())

	res, err := svc.EnhanceDraft(context.Background(), "plz fix this", ModePolish, Request{})
	require.NoError(t, err)
	assert.Equal(t, "plz fix this", res.EnhancedText)
	assert.False(t, res.WasEnhanced)
	assert.Equal(t, "enhancement not available", res.Summary)
	assert.Equal(t, "none", res.ModelUsed)
}

func TestEnhanceNilBackendReturnsOriginal(t *testing.T) {
	svc := NewService(enabledCfg(), nil, nil)
	assert.False(t, svc.Enabled())

	res, err := svc.EnhanceDraft(context.Background(), "some draft", ModePolish, Request{})
	require.NoError(t, err)
	assert.Equal(t, "some draft", res.EnhancedText)
}

func TestEnhanceRuleBasedToneAdjust(t *testing.T) {
	svc := NewService(enabledCfg(), NewRuleBased(), nil)

	res, err := svc.EnhanceDraft(context.Background(),
		"I request action kindly", ModeToneAdjust, Request{Tone: "assertive"})
	require.NoError(t, err)
	assert.True(t, res.WasEnhanced)
	assert.Equal(t, "I demand action immediately", res.EnhancedText)
	assert.Equal(t, "I request action kindly", res.OriginalText)
	assert.Equal(t, "tone adjusted to assertive", res.Summary)
	assert.Equal(t, "rule_based", res.ModelUsed)
}

func TestEnhanceRejectsLostCurlyPlaceholder(t *testing.T) {
	backend := &stubBackend{resp: Response{Text: "Period: soon", Model: "stub"}}
	svc := NewService(enabledCfg(), backend, nil)

	original := "Period: {TIME_PERIOD}"
	res, err := svc.EnhanceDraft(context.Background(), original, ModePolish, Request{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodePlaceholderLost))
	assert.False(t, res.WasEnhanced)
	assert.Equal(t, original, res.EnhancedText)
	assert.Equal(t, "enhancement reverted: placeholders were modified", res.Summary)
}

func TestEnhanceRejectsLostBracketToken(t *testing.T) {
	backend := &stubBackend{resp: Response{
		Text:  "Send it to the office. Period: {TIME_PERIOD}",
		Model: "stub",
	}}
	svc := NewService(enabledCfg(), backend, nil)

	original := "Send it to [Department Address]. Period: {TIME_PERIOD}"
	res, err := svc.EnhanceDraft(context.Background(), original, ModePolish, Request{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodePlaceholderLost))
	assert.Equal(t, original, res.EnhancedText)
}

func TestEnhanceBackendErrorFallsBack(t *testing.T) {
	backend := &stubBackend{err: errors.New(errors.CodeInternal, "model unavailable")}
	svc := NewService(enabledCfg(), backend, nil)

	res, err := svc.EnhanceDraft(context.Background(), "the draft", ModePolish, Request{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeEnhanceFailed))
	assert.Equal(t, "the draft", res.EnhancedText)
	assert.Equal(t, "enhancement failed, using original", res.Summary)
}

func TestEnhanceNoChangeSummary(t *testing.T) {
	backend := &stubBackend{resp: Response{Text: "already clean", Model: "stub"}}
	svc := NewService(enabledCfg(), backend, nil)

	res, err := svc.EnhanceDraft(context.Background(), "already clean", ModePolish, Request{})
	require.NoError(t, err)
	assert.False(t, res.WasEnhanced)
	assert.Equal(t, "no changes needed", res.Summary)
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, ModeTranslate, ModeFor("hindi", ""))
	assert.Equal(t, ModeToneAdjust, ModeFor("english", "formal"))
	assert.Equal(t, ModeToneAdjust, ModeFor("", "assertive"))
	assert.Equal(t, ModePolish, ModeFor("english", "neutral"))
	assert.Equal(t, ModePolish, ModeFor("", ""))
}

func TestRuleBasedPassThroughModes(t *testing.T) {
	backend := NewRuleBased()
	resp, err := backend.Enhance(context.Background(), Request{Text: "keep as is", Mode: ModeTranslate})
	require.NoError(t, err)
	assert.Equal(t, "keep as is", resp.Text)
}
