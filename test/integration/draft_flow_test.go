// Integration test: the full citizen-assistance flow.  Exercises the
// inference pipeline, authority resolution, draft assembly, enhancement, and
// document export end to end, checking that each stage's output is a valid
// input for the next.
package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/application/draft"
	"github.com/turtacn/CivicDraft/internal/application/enhance"
	"github.com/turtacn/CivicDraft/internal/application/inference"
	"github.com/turtacn/CivicDraft/internal/config"
	"github.com/turtacn/CivicDraft/internal/domain/authority"
	"github.com/turtacn/CivicDraft/internal/infrastructure/render"
)

type testEnv struct {
	cfg       *config.Config
	inference *inference.Service
	resolver  *authority.Resolver
	assembler *draft.Assembler
	enhancer  *enhance.Service
	exporter  *render.Exporter
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Enhance.Enabled = true

	return &testEnv{
		cfg:       cfg,
		inference: inference.NewService(cfg.Inference, nil, nil, nil, nil, nil, nil, nil, nil),
		resolver:  authority.NewResolver(nil),
		assembler: draft.NewAssembler(nil),
		enhancer:  enhance.NewService(cfg.Enhance, enhance.NewRuleBased(), nil),
		exporter:  render.NewExporter(nil),
	}
}

func TestRTIFlow_InferToExport(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	// Stage 1: classify the citizen's text.
	result, err := env.inference.Run(ctx, inference.Request{
		Text: "I want to file an RTI application under the RTI Act to obtain information and copies of records about road repair funds in my ward.",
	})
	require.NoError(t, err)
	require.Equal(t, "rti", string(result.Intent))
	require.True(t, result.DocumentType.Valid())

	// Stage 2: resolve the authority from the mapped category.
	category := "roads"
	if len(result.Issues) > 0 {
		category = string(result.Issues[0].Category)
	}
	resolution := env.resolver.Resolve(authority.Request{
		Category: category,
		State:    "rajasthan",
		District: "Jaipur",
		IsRTI:    true,
	})
	require.NotNil(t, resolution.Primary)
	assert.True(t, resolution.Primary.Primary)

	// Stage 3: assemble the draft addressed to the resolved authority.
	d, err := env.assembler.Assemble(draft.Input{
		DocumentType:      result.DocumentType,
		ApplicantName:     "Ravi Kumar",
		ApplicantAddress:  "12 MG Road, Jaipur",
		ApplicantState:    "Rajasthan",
		DepartmentName:    resolution.Primary.Authority.Department,
		DepartmentAddress: resolution.Primary.Authority.AddressTemplate,
		IssueDescription:  "Details of road repair funds allocated and spent in my ward",
		SpecificRequest:   "Copies of sanction orders and utilisation certificates for ward road repairs",
	})
	require.NoError(t, err)
	assert.Contains(t, d.Text, "Ravi Kumar")
	assert.Contains(t, d.Text, resolution.Primary.Authority.Department)
	assert.NotContains(t, d.Text, "{APPLICANT_NAME}")

	// Stage 4: enhancement must never lose placeholders.
	enh, err := env.enhancer.EnhanceDraft(ctx, d.Text, enhance.ModePolish, enhance.Request{})
	require.NoError(t, err)
	assert.NotEmpty(t, enh.EnhancedText)
	assert.NotContains(t, enh.EnhancedText, "{")

	// Stage 5: export the final text in every supported format.
	for _, format := range env.exporter.Formats() {
		out, err := env.exporter.Export(ctx, format, render.Request{
			DraftText:     enh.EnhancedText,
			DocumentType:  string(result.DocumentType),
			ApplicantName: "Ravi Kumar",
		})
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, out.Data)
		assert.True(t, strings.HasSuffix(out.Filename, "."+format))
	}
}

func TestComplaintFlow_EscalationRouting(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	result, err := env.inference.Run(ctx, inference.Request{
		Text: "I have complained about the broken street light many times but there has been no response for months. I want to escalate this complaint.",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "rti", string(result.Intent))

	resolution := env.resolver.Resolve(authority.Request{
		Category: "electricity",
		State:    "kerala",
		Hints:    result.KeyPhrases,
	})
	require.NotEmpty(t, resolution.Matches)

	d, err := env.assembler.Assemble(draft.Input{
		DocumentType:         inference.DocEscalation,
		ApplicantName:        "Asha Patel",
		ApplicantState:       "Kerala",
		AuthorityDesignation: resolution.Matches[0].Authority.Designation,
		IssueDescription:     "Street light outside house 14 has been broken for months with no response to repeated complaints",
		IssueCategory:        "Street Lighting",
	})
	require.NoError(t, err)
	assert.Contains(t, d.Text, "Asha Patel")
	assert.Greater(t, d.WordCount, 50)
}
