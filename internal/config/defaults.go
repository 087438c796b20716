// Package config provides configuration loading, defaults, and validation for
// the CivicDraft service.
package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultMinInputLength = 10
	DefaultMaxInputLength = 5000

	DefaultHighThreshold     = 0.90
	DefaultMediumThreshold   = 0.70
	DefaultLowThreshold      = 0.50
	DefaultNLPThreshold      = 0.70
	DefaultSemanticThreshold = 0.60

	DefaultAmbiguityFloor  = 0.50
	DefaultAmbiguityMargin = 0.10
	DefaultAmbiguityCap    = 0.60

	DefaultAdoptThreshold      = 0.60
	DefaultSemanticDiscount    = 0.80
	DefaultSemanticBoostFactor = 0.10
	DefaultSemanticBoostCap    = 0.90

	DefaultContextBoost      = 0.10
	DefaultConfidenceCeiling = 0.95

	DefaultSemanticBudget = 2 * time.Second
	DefaultAuditTrailSize = 256

	DefaultEmbeddingDim = 256
	DefaultCacheSize    = 1000

	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "civicdraft"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = 1 << 20 // 1 MiB
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.RateLimitRPS == 0 {
		cfg.Server.RateLimitRPS = 20
	}
	if cfg.Server.RateLimitBurst == 0 {
		cfg.Server.RateLimitBurst = 40
	}

	// ── Inference ─────────────────────────────────────────────────────────────
	inf := &cfg.Inference
	if inf.MinInputLength == 0 {
		inf.MinInputLength = DefaultMinInputLength
	}
	if inf.MaxInputLength == 0 {
		inf.MaxInputLength = DefaultMaxInputLength
	}
	if inf.HighThreshold == 0 {
		inf.HighThreshold = DefaultHighThreshold
	}
	if inf.MediumThreshold == 0 {
		inf.MediumThreshold = DefaultMediumThreshold
	}
	if inf.LowThreshold == 0 {
		inf.LowThreshold = DefaultLowThreshold
	}
	if inf.NLPThreshold == 0 {
		inf.NLPThreshold = DefaultNLPThreshold
	}
	if inf.SemanticThreshold == 0 {
		inf.SemanticThreshold = DefaultSemanticThreshold
	}
	if inf.AmbiguityFloor == 0 {
		inf.AmbiguityFloor = DefaultAmbiguityFloor
	}
	if inf.AmbiguityMargin == 0 {
		inf.AmbiguityMargin = DefaultAmbiguityMargin
	}
	if inf.AmbiguityCap == 0 {
		inf.AmbiguityCap = DefaultAmbiguityCap
	}
	if inf.AdoptThreshold == 0 {
		inf.AdoptThreshold = DefaultAdoptThreshold
	}
	if inf.SemanticDiscount == 0 {
		inf.SemanticDiscount = DefaultSemanticDiscount
	}
	if inf.SemanticBoostFactor == 0 {
		inf.SemanticBoostFactor = DefaultSemanticBoostFactor
	}
	if inf.SemanticBoostCap == 0 {
		inf.SemanticBoostCap = DefaultSemanticBoostCap
	}
	if inf.ContextBoost == 0 {
		inf.ContextBoost = DefaultContextBoost
	}
	if inf.ConfidenceCeiling == 0 {
		inf.ConfidenceCeiling = DefaultConfidenceCeiling
	}
	if inf.SemanticBudget == 0 {
		inf.SemanticBudget = DefaultSemanticBudget
	}
	if inf.AuditTrailSize == 0 {
		inf.AuditTrailSize = DefaultAuditTrailSize
	}

	// ── Semantic ──────────────────────────────────────────────────────────────
	if cfg.Semantic.EmbeddingDim == 0 {
		cfg.Semantic.EmbeddingDim = DefaultEmbeddingDim
	}
	if cfg.Semantic.CacheSize == 0 {
		cfg.Semantic.CacheSize = DefaultCacheSize
	}

	// ── Enhance ───────────────────────────────────────────────────────────────
	if cfg.Enhance.Timeout == 0 {
		cfg.Enhance.Timeout = 15 * time.Second
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
