package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/CivicDraft/internal/testutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestTokenBucketLimiterBurst(t *testing.T) {
	l := NewTokenBucketLimiter(1, 2, 0)
	defer l.Stop()

	allowed, info := l.Allow("client")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = l.Allow("client")
	assert.True(t, allowed)

	allowed, info = l.Allow("client")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)

	// A different client has its own bucket.
	allowed, _ = l.Allow("other")
	assert.True(t, allowed)
	assert.Equal(t, 2, l.BucketCount())
}

func TestRateLimitMiddleware(t *testing.T) {
	l := NewTokenBucketLimiter(1, 1, 0)
	defer l.Stop()

	cfg := DefaultRateLimitConfig()
	handler := RateLimit(l, cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/infer", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate limit exceeded")
}

func TestRateLimitSkipsProbePaths(t *testing.T) {
	l := NewTokenBucketLimiter(1, 1, 0)
	defer l.Stop()

	handler := RateLimit(l, DefaultRateLimitConfig())(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"https://app.example.org"}
	handler := CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/infer", nil)
	req.Header.Set("Origin", "https://app.example.org")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.org", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSDisallowedOriginGetsNoHeaders(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"https://app.example.org"}
	handler := CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/infer", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcard(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"*"}
	handler := CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/infer", nil)
	req.Header.Set("Origin", "https://anything.example.net")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLoggingCapturesStatus(t *testing.T) {
	mock := testutil.NewMockLogger()
	var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler = RequestLogging(mock, nil, DefaultLoggingConfig())(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/infer", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTeapot, rec.Code)

	assert.True(t, mock.HasMessage("warn", "request completed with client error"))
	assert.Equal(t, "418", mock.FieldValue("request completed with client error", "status"))
	assert.Equal(t, "/api/v1/infer", mock.FieldValue("request completed with client error", "path"))
}

func TestRequestLoggingSkipsProbePaths(t *testing.T) {
	mock := testutil.NewMockLogger()
	handler := RequestLogging(mock, nil, DefaultLoggingConfig())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Empty(t, mock.Messages())
}

func TestTokenBucketRefill(t *testing.T) {
	l := NewTokenBucketLimiter(100, 1, 0)
	defer l.Stop()

	allowed, _ := l.Allow("c")
	require.True(t, allowed)
	allowed, _ = l.Allow("c")
	require.False(t, allowed)

	time.Sleep(20 * time.Millisecond)
	allowed, _ = l.Allow("c")
	assert.True(t, allowed, "bucket should refill at 100 tokens/sec")
}
