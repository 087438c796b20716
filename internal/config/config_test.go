package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config that passes Validate after defaults.
func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_ServerPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	assert.ErrorContains(t, cfg.Validate(), "server.port")

	cfg.Server.Port = 70000
	assert.ErrorContains(t, cfg.Validate(), "server.port")
}

func TestValidate_ServerMode(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Mode = "production"
	assert.ErrorContains(t, cfg.Validate(), "server.mode")
}

func TestValidate_ThresholdOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.Inference.MediumThreshold = 0.95 // above high
	assert.ErrorContains(t, cfg.Validate(), "high > medium > low")

	cfg = validConfig()
	cfg.Inference.LowThreshold = 0.80 // above medium
	assert.ErrorContains(t, cfg.Validate(), "high > medium > low")
}

func TestValidate_EscalationOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.Inference.SemanticThreshold = 0.80 // above nlp threshold
	assert.ErrorContains(t, cfg.Validate(), "semantic_threshold")
}

func TestValidate_InputBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Inference.MaxInputLength = cfg.Inference.MinInputLength
	assert.ErrorContains(t, cfg.Validate(), "max_input_length")
}

func TestValidate_AmbiguityMargin(t *testing.T) {
	cfg := validConfig()
	cfg.Inference.AmbiguityMargin = 1.5
	assert.ErrorContains(t, cfg.Validate(), "ambiguity_margin")
}

func TestValidate_SemanticBudget(t *testing.T) {
	cfg := validConfig()
	cfg.Inference.SemanticBudget = -time.Second
	assert.ErrorContains(t, cfg.Validate(), "semantic_budget")
}

func TestValidate_CacheSize(t *testing.T) {
	cfg := validConfig()
	cfg.Semantic.CacheSize = -1
	assert.ErrorContains(t, cfg.Validate(), "cache_size")
}

func TestValidate_LogLevelAndFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "log.level")

	cfg = validConfig()
	cfg.Log.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "log.format")
}
