// Package http wires the CivicDraft REST API: routing, middleware and the
// server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CivicDraft/internal/interfaces/http/handlers"
	"github.com/turtacn/CivicDraft/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and middleware that make up the
// route tree.  Nil entries are simply not mounted.
type RouterConfig struct {
	InferHandler     *handlers.InferHandler
	DraftHandler     *handlers.DraftHandler
	AuthorityHandler *handlers.AuthorityHandler
	DownloadHandler  *handlers.DownloadHandler
	EnhanceHandler   *handlers.EnhanceHandler
	HealthHandler    *handlers.HealthHandler

	CORS      func(http.Handler) http.Handler
	Logging   func(http.Handler) http.Handler
	RateLimit func(http.Handler) http.Handler

	MetricsCollector prometheus.MetricsCollector
}

// NewRouter builds the complete route tree.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.Logging != nil {
		r.Use(cfg.Logging)
	}
	if cfg.RateLimit != nil {
		r.Use(cfg.RateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/healthz", cfg.HealthHandler.Liveness)
		r.Get("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.Handle("/metrics", cfg.MetricsCollector.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		if cfg.InferHandler != nil {
			api.Post("/infer", cfg.InferHandler.Infer)
			api.Get("/infer/audit", cfg.InferHandler.Audit)
		}
		if cfg.DraftHandler != nil {
			api.Post("/draft", cfg.DraftHandler.Draft)
			api.Get("/draft/templates", cfg.DraftHandler.Templates)
		}
		if cfg.AuthorityHandler != nil {
			api.Get("/authorities", cfg.AuthorityHandler.List)
			api.Get("/authorities/{category}", cfg.AuthorityHandler.Resolve)
		}
		if cfg.DownloadHandler != nil {
			api.Get("/download/formats", cfg.DownloadHandler.Formats)
			api.Post("/download/{format}", cfg.DownloadHandler.Download)
		}
		if cfg.EnhanceHandler != nil {
			api.Post("/enhance", cfg.EnhanceHandler.Enhance)
		}
	})

	return r
}

// NewMiddleware builds the standard middleware chain pieces from server
// settings.  The returned limiter should be stopped on shutdown.
func NewMiddleware(logger logging.Logger, metrics *prometheus.AppMetrics, rps float64, burst int, corsOrigins []string) (
	cors, logMW, rateMW func(http.Handler) http.Handler, limiter *middleware.TokenBucketLimiter) {

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = corsOrigins
	cors = middleware.CORS(corsCfg)

	logMW = middleware.RequestLogging(logger, metrics, middleware.DefaultLoggingConfig())

	rlCfg := middleware.DefaultRateLimitConfig()
	if rps > 0 {
		rlCfg.RequestsPerSecond = rps
	}
	if burst > 0 {
		rlCfg.BurstSize = burst
	}
	limiter = middleware.NewTokenBucketLimiter(rlCfg.RequestsPerSecond, rlCfg.BurstSize, rlCfg.CleanupInterval)
	rateMW = middleware.RateLimit(limiter, rlCfg)

	return cors, logMW, rateMW, limiter
}
