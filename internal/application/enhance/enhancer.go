// Package enhance polishes assembled drafts.  The rule-based assembler
// creates the document; an enhancer only improves its language and is always
// optional.  The original draft survives every failure mode.
package enhance

import (
	"context"

	"github.com/turtacn/CivicDraft/internal/application/draft"
)

// Mode selects the kind of enhancement applied to a draft.
type Mode string

const (
	ModePolish     Mode = "polish"
	ModeToneAdjust Mode = "tone_adjust"
	ModeTranslate  Mode = "translate"
	ModeClarify    Mode = "clarify"
)

// Request is a single enhancement call to a backend.
type Request struct {
	Text string
	Mode Mode

	// Tone applies to ModeToneAdjust ("formal" | "assertive").
	Tone string
	// Language applies to ModeTranslate (target language).
	Language string
	// Category gives issue context for ModeClarify.
	Category string
}

// Response is what a backend produced.  Text may equal the input when the
// backend decided no change was warranted.
type Response struct {
	Text       string
	Model      string
	TokensUsed int
	Changes    []string
}

// Enhancer is the capability boundary for text improvement.  Implementations
// may call an external model; the service wrapper guarantees the caller never
// loses the original draft regardless of what an implementation does.
type Enhancer interface {
	Name() string
	Enhance(ctx context.Context, req Request) (Response, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// Rule-based backend
// ─────────────────────────────────────────────────────────────────────────────

// RuleBased adjusts tone and expands casual abbreviations with the same
// word tables the assembler uses.  It needs no network and serves as the
// default backend when no external model is configured.
type RuleBased struct{}

// NewRuleBased returns the deterministic in-process backend.
func NewRuleBased() *RuleBased { return &RuleBased{} }

func (r *RuleBased) Name() string { return "rule_based" }

func (r *RuleBased) Enhance(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	switch req.Mode {
	case ModeToneAdjust:
		return Response{
			Text:    draft.AdjustTone(req.Text, req.Tone),
			Model:   r.Name(),
			Changes: []string{"tone adjusted to " + req.Tone},
		}, nil
	case ModePolish:
		return Response{
			Text:    draft.AdjustTone(req.Text, draft.ToneNeutral),
			Model:   r.Name(),
			Changes: []string{"casual abbreviations expanded"},
		}, nil
	default:
		// Translation and clarification need a model; pass through.
		return Response{Text: req.Text, Model: r.Name()}, nil
	}
}
