// Package config defines all configuration structures for the CivicDraft
// service.  No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimitRPS    float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// InferenceConfig holds every tunable of the staged inference pipeline.
// Thresholds are configuration rather than constants so deployments can be
// retuned without a rebuild.
type InferenceConfig struct {
	// Input validation bounds, in characters.
	MinInputLength int `mapstructure:"min_input_length"`
	MaxInputLength int `mapstructure:"max_input_length"`

	// Confidence band boundaries.  Must satisfy High > Medium > Low > 0.
	HighThreshold   float64 `mapstructure:"high_threshold"`
	MediumThreshold float64 `mapstructure:"medium_threshold"`
	LowThreshold    float64 `mapstructure:"low_threshold"`

	// Escalation cut-offs.  A rule-engine result below NLPThreshold is
	// enriched with entity extraction; below SemanticThreshold the semantic
	// matcher also runs.
	NLPThreshold      float64 `mapstructure:"nlp_threshold"`
	SemanticThreshold float64 `mapstructure:"semantic_threshold"`

	// Ambiguity handling: when the top two intent scores exceed
	// AmbiguityFloor and sit within AmbiguityMargin of each other, the
	// winning confidence is capped at AmbiguityCap.
	AmbiguityFloor  float64 `mapstructure:"ambiguity_floor"`
	AmbiguityMargin float64 `mapstructure:"ambiguity_margin"`
	AmbiguityCap    float64 `mapstructure:"ambiguity_cap"`

	// Semantic adoption: an unknown intent adopts the top template match
	// when its similarity exceeds AdoptThreshold, discounted by
	// SemanticDiscount.  Agreeing matches boost confidence by
	// similarity × SemanticBoostFactor up to SemanticBoostCap.
	AdoptThreshold      float64 `mapstructure:"adopt_threshold"`
	SemanticDiscount    float64 `mapstructure:"semantic_discount"`
	SemanticBoostFactor float64 `mapstructure:"semantic_boost_factor"`
	SemanticBoostCap    float64 `mapstructure:"semantic_boost_cap"`

	// Corroboration boost applied when legal triggers agree with the
	// classified intent, and the ceiling no stage may exceed.
	ContextBoost      float64 `mapstructure:"context_boost"`
	ConfidenceCeiling float64 `mapstructure:"confidence_ceiling"`

	// SemanticBudget bounds the wall-clock time spent in the semantic
	// stage; on expiry the pipeline proceeds with the rule-engine result.
	SemanticBudget time.Duration `mapstructure:"semantic_budget"`

	// AuditTrailSize is the capacity of the in-memory ring buffer of
	// recent inference decisions.
	AuditTrailSize int `mapstructure:"audit_trail_size"`
}

// SemanticConfig holds embedding and similarity-cache parameters.
type SemanticConfig struct {
	EmbeddingDim int `mapstructure:"embedding_dim"`
	CacheSize    int `mapstructure:"cache_size"`
}

// EnhanceConfig holds draft-enhancement parameters.  Enhancement is
// optional; when disabled the service returns drafts verbatim.
type EnhanceConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level            string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format           string   `mapstructure:"format"` // "json" | "console"
	OutputPaths      []string `mapstructure:"output_paths"`
	ErrorOutputPaths []string `mapstructure:"error_output_paths"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the service.  Every
// component reads its settings from the relevant sub-struct.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Inference InferenceConfig `mapstructure:"inference"`
	Semantic  SemanticConfig  `mapstructure:"semantic"`
	Enhance   EnhanceConfig   `mapstructure:"enhance"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Log       LogConfig       `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Inference
	inf := c.Inference
	if inf.MinInputLength < 1 {
		return fmt.Errorf("config: inference.min_input_length must be ≥ 1, got %d", inf.MinInputLength)
	}
	if inf.MaxInputLength <= inf.MinInputLength {
		return fmt.Errorf("config: inference.max_input_length %d must exceed min_input_length %d",
			inf.MaxInputLength, inf.MinInputLength)
	}
	if !(inf.HighThreshold > inf.MediumThreshold && inf.MediumThreshold > inf.LowThreshold && inf.LowThreshold > 0) {
		return fmt.Errorf("config: inference thresholds must satisfy high > medium > low > 0, got %.2f/%.2f/%.2f",
			inf.HighThreshold, inf.MediumThreshold, inf.LowThreshold)
	}
	if inf.HighThreshold > 1 {
		return fmt.Errorf("config: inference.high_threshold %.2f exceeds 1.0", inf.HighThreshold)
	}
	if inf.SemanticThreshold > inf.NLPThreshold {
		return fmt.Errorf("config: inference.semantic_threshold %.2f must not exceed nlp_threshold %.2f",
			inf.SemanticThreshold, inf.NLPThreshold)
	}
	if inf.AmbiguityMargin <= 0 || inf.AmbiguityMargin >= 1 {
		return fmt.Errorf("config: inference.ambiguity_margin %.2f is out of range (0, 1)", inf.AmbiguityMargin)
	}
	if inf.ConfidenceCeiling <= 0 || inf.ConfidenceCeiling > 1 {
		return fmt.Errorf("config: inference.confidence_ceiling %.2f is out of range (0, 1]", inf.ConfidenceCeiling)
	}
	if inf.SemanticBudget <= 0 {
		return fmt.Errorf("config: inference.semantic_budget must be positive, got %s", inf.SemanticBudget)
	}
	if inf.AuditTrailSize < 1 {
		return fmt.Errorf("config: inference.audit_trail_size must be ≥ 1, got %d", inf.AuditTrailSize)
	}

	// Semantic
	if c.Semantic.EmbeddingDim < 8 {
		return fmt.Errorf("config: semantic.embedding_dim must be ≥ 8, got %d", c.Semantic.EmbeddingDim)
	}
	if c.Semantic.CacheSize < 1 {
		return fmt.Errorf("config: semantic.cache_size must be ≥ 1, got %d", c.Semantic.CacheSize)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
