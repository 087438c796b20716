package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

func scrape(t *testing.T, c MetricsCollector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return rec.Body.String()
}

func TestNewAppMetrics_RegistersAllInstruments(t *testing.T) {
	c := newTestCollector(t)
	m := NewAppMetrics(c)

	RecordHTTPRequest(m, "POST", "/api/v1/infer", 200, 5*time.Millisecond)
	RecordInference(m, "rti_request", "high", 2*time.Millisecond)
	RecordStage(m, "rule_engine", time.Millisecond)
	RecordStageDegraded(m, "entity_extraction")
	RecordEscalation(m, "semantic")
	RecordCacheAccess(m, true)
	RecordCacheAccess(m, false)
	RecordDraft(m, "rti_application")
	RecordRender(m, "xlsx", true)
	RecordRender(m, "pdf", false)
	RecordError(m, "inference", "INF_004")

	body := scrape(t, c)
	assert.Contains(t, body, `civicdraft_http_requests_total{method="POST",path="/api/v1/infer",status_code="200"} 1`)
	assert.Contains(t, body, `civicdraft_inference_requests_total{confidence_level="high",intent="rti_request"} 1`)
	assert.Contains(t, body, `civicdraft_stage_degraded_total{stage="entity_extraction"} 1`)
	assert.Contains(t, body, `civicdraft_escalations_total{stage="semantic"} 1`)
	assert.Contains(t, body, "civicdraft_embedding_cache_hits_total 1")
	assert.Contains(t, body, "civicdraft_embedding_cache_misses_total 1")
	assert.Contains(t, body, `civicdraft_drafts_generated_total{document_type="rti_application"} 1`)
	assert.Contains(t, body, `civicdraft_renders_total{format="pdf",status="failure"} 1`)
	assert.Contains(t, body, `civicdraft_errors_total{code="INF_004",component="inference"} 1`)
}

func TestRecordingHelpers_NilMetricsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordHTTPRequest(nil, "GET", "/", 200, 0)
		RecordInference(nil, "unknown", "very_low", 0)
		RecordStage(nil, "rule_engine", 0)
		RecordStageDegraded(nil, "semantic")
		RecordEscalation(nil, "nlp")
		RecordCacheAccess(nil, true)
		RecordDraft(nil, "complaint_letter")
		RecordRender(nil, "docx", true)
		RecordError(nil, "draft", "DRAFT_001")
	})
}

func TestNewAppMetrics_SeparateCollectorsIsolated(t *testing.T) {
	c1, _ := NewMetricsCollector(CollectorConfig{Namespace: "civicdraft"}, logging.NewNopLogger())
	c2, _ := NewMetricsCollector(CollectorConfig{Namespace: "civicdraft"}, logging.NewNopLogger())

	m1 := NewAppMetrics(c1)
	NewAppMetrics(c2)

	RecordDraft(m1, "grievance_petition")
	assert.Contains(t, scrape(t, c1), `civicdraft_drafts_generated_total{document_type="grievance_petition"} 1`)
	assert.NotContains(t, scrape(t, c2), "grievance_petition")
}
