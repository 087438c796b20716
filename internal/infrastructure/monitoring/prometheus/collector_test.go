package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
)

func newTestCollector(t *testing.T) MetricsCollector {
	t.Helper()
	c, err := NewMetricsCollector(CollectorConfig{Namespace: "civicdraft"}, logging.NewNopLogger())
	require.NoError(t, err)
	return c
}

func TestNewMetricsCollector_RequiresNamespace(t *testing.T) {
	_, err := NewMetricsCollector(CollectorConfig{}, logging.NewNopLogger())
	require.Error(t, err)
}

func TestRegisterCounter_IncrementAndExpose(t *testing.T) {
	c := newTestCollector(t)
	vec := c.RegisterCounter("test_requests_total", "test", "intent")
	vec.WithLabelValues("rti_request").Inc()
	vec.WithLabelValues("rti_request").Add(2)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `civicdraft_test_requests_total{intent="rti_request"} 3`)
}

func TestRegisterCounter_DuplicateReturnsSameInstrument(t *testing.T) {
	c := newTestCollector(t)
	first := c.RegisterCounter("dup_total", "test", "k")
	second := c.RegisterCounter("dup_total", "test", "k")

	first.WithLabelValues("a").Inc()
	second.WithLabelValues("a").Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `civicdraft_dup_total{k="a"} 2`)
}

func TestRegisterHistogram_DefaultBuckets(t *testing.T) {
	c := newTestCollector(t)
	vec := c.RegisterHistogram("stage_seconds", "test", nil, "stage")
	vec.WithLabelValues("rule_engine").Observe(0.01)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "civicdraft_stage_seconds_count")
}

func TestRegisterGauge_SetAndDec(t *testing.T) {
	c := newTestCollector(t)
	vec := c.RegisterGauge("active", "test", "path")
	g := vec.WithLabelValues("/api/v1/infer")
	g.Set(5)
	g.Dec()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `civicdraft_active{path="/api/v1/infer"} 4`)
}

func TestTimer_NilHistogramIsSafe(t *testing.T) {
	timer := NewTimer(nil)
	assert.NotPanics(t, timer.ObserveDuration)
}

func TestTimer_Observes(t *testing.T) {
	c := newTestCollector(t)
	vec := c.RegisterHistogram("timed_seconds", "test", nil)
	timer := NewTimer(vec.WithLabelValues())
	time.Sleep(time.Millisecond)
	timer.ObserveDuration()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "civicdraft_timed_seconds_count 1")
}
