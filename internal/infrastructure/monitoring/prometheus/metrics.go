package prometheus

import (
	"fmt"
	"time"
)

// AppMetrics holds every instrument the service records.  Construct once at
// startup with NewAppMetrics and inject the pointer wherever recording is
// needed; a nil *AppMetrics disables all helpers.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Inference pipeline
	InferenceRequestsTotal  CounterVec
	InferenceDuration       HistogramVec
	StageDuration           HistogramVec
	StageDegradedTotal      CounterVec
	EscalationsTotal        CounterVec
	AmbiguousIntentsTotal   CounterVec
	ConfirmationNeededTotal CounterVec

	// Semantic layer
	EmbeddingCacheHitsTotal   CounterVec
	EmbeddingCacheMissesTotal CounterVec
	SemanticBudgetExceeded    CounterVec

	// Draft / render / enhance
	DraftsGeneratedTotal CounterVec
	RendersTotal         CounterVec
	EnhanceRequestsTotal CounterVec

	// System health
	ErrorsTotal CounterVec
}

// Default buckets.
var (
	DefaultHTTPDurationBuckets  = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultStageDurationBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 2, 5}
)

// NewAppMetrics registers all instruments against collector and returns the
// populated struct.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	// HTTP
	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method", "path")

	// Inference pipeline
	m.InferenceRequestsTotal = collector.RegisterCounter("inference_requests_total", "Inference requests", "intent", "confidence_level")
	m.InferenceDuration = collector.RegisterHistogram("inference_duration_seconds", "End-to-end inference duration", DefaultStageDurationBuckets)
	m.StageDuration = collector.RegisterHistogram("stage_duration_seconds", "Per-stage inference duration", DefaultStageDurationBuckets, "stage")
	m.StageDegradedTotal = collector.RegisterCounter("stage_degraded_total", "Stages skipped after a local failure", "stage")
	m.EscalationsTotal = collector.RegisterCounter("escalations_total", "Escalations past the rule engine", "stage")
	m.AmbiguousIntentsTotal = collector.RegisterCounter("ambiguous_intents_total", "Classifications capped for ambiguity")
	m.ConfirmationNeededTotal = collector.RegisterCounter("confirmation_needed_total", "Results flagged for user confirmation", "reason")

	// Semantic
	m.EmbeddingCacheHitsTotal = collector.RegisterCounter("embedding_cache_hits_total", "Embedding cache hits")
	m.EmbeddingCacheMissesTotal = collector.RegisterCounter("embedding_cache_misses_total", "Embedding cache misses")
	m.SemanticBudgetExceeded = collector.RegisterCounter("semantic_budget_exceeded_total", "Semantic stage aborted on deadline")

	// Draft / render / enhance
	m.DraftsGeneratedTotal = collector.RegisterCounter("drafts_generated_total", "Drafts generated", "document_type")
	m.RendersTotal = collector.RegisterCounter("renders_total", "Document renders", "format", "status")
	m.EnhanceRequestsTotal = collector.RegisterCounter("enhance_requests_total", "Draft enhancement requests", "status")

	// System health
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Total errors", "component", "code")

	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Recording helpers — nil-safe
// ─────────────────────────────────────────────────────────────────────────────

func RecordHTTPRequest(m *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, fmt.Sprintf("%d", statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordInference(m *AppMetrics, intent, level string, duration time.Duration) {
	if m == nil {
		return
	}
	m.InferenceRequestsTotal.WithLabelValues(intent, level).Inc()
	m.InferenceDuration.WithLabelValues().Observe(duration.Seconds())
}

func RecordStage(m *AppMetrics, stage string, duration time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

func RecordStageDegraded(m *AppMetrics, stage string) {
	if m == nil {
		return
	}
	m.StageDegradedTotal.WithLabelValues(stage).Inc()
}

func RecordEscalation(m *AppMetrics, stage string) {
	if m == nil {
		return
	}
	m.EscalationsTotal.WithLabelValues(stage).Inc()
}

func RecordAmbiguousIntent(m *AppMetrics) {
	if m == nil {
		return
	}
	m.AmbiguousIntentsTotal.WithLabelValues().Inc()
}

func RecordConfirmationNeeded(m *AppMetrics, reason string) {
	if m == nil {
		return
	}
	m.ConfirmationNeededTotal.WithLabelValues(reason).Inc()
}

func RecordSemanticBudgetExceeded(m *AppMetrics) {
	if m == nil {
		return
	}
	m.SemanticBudgetExceeded.WithLabelValues().Inc()
}

func RecordCacheAccess(m *AppMetrics, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.EmbeddingCacheHitsTotal.WithLabelValues().Inc()
	} else {
		m.EmbeddingCacheMissesTotal.WithLabelValues().Inc()
	}
}

func RecordDraft(m *AppMetrics, documentType string) {
	if m == nil {
		return
	}
	m.DraftsGeneratedTotal.WithLabelValues(documentType).Inc()
}

func RecordRender(m *AppMetrics, format string, success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	m.RendersTotal.WithLabelValues(format, status).Inc()
}

func RecordError(m *AppMetrics, component, code string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(component, code).Inc()
}
