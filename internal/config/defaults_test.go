package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_NilIsSafe(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultServerMode, cfg.Server.Mode)
	assert.Equal(t, DefaultHighThreshold, cfg.Inference.HighThreshold)
	assert.Equal(t, DefaultMediumThreshold, cfg.Inference.MediumThreshold)
	assert.Equal(t, DefaultLowThreshold, cfg.Inference.LowThreshold)
	assert.Equal(t, DefaultNLPThreshold, cfg.Inference.NLPThreshold)
	assert.Equal(t, DefaultSemanticThreshold, cfg.Inference.SemanticThreshold)
	assert.Equal(t, DefaultAmbiguityCap, cfg.Inference.AmbiguityCap)
	assert.Equal(t, DefaultConfidenceCeiling, cfg.Inference.ConfidenceCeiling)
	assert.Equal(t, DefaultSemanticBudget, cfg.Inference.SemanticBudget)
	assert.Equal(t, DefaultCacheSize, cfg.Semantic.CacheSize)
	assert.Equal(t, DefaultEmbeddingDim, cfg.Semantic.EmbeddingDim)
	assert.Equal(t, DefaultMetricsNamespace, cfg.Metrics.Namespace)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestApplyDefaults_ExplicitValuesWin(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Inference.HighThreshold = 0.85
	cfg.Inference.SemanticBudget = 5 * time.Second
	ApplyDefaults(cfg)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, 0.85, cfg.Inference.HighThreshold)
	assert.Equal(t, 5*time.Second, cfg.Inference.SemanticBudget)
}
