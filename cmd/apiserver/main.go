// API server entry point for CivicDraft.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/turtacn/CivicDraft/internal/application/draft"
	"github.com/turtacn/CivicDraft/internal/application/enhance"
	"github.com/turtacn/CivicDraft/internal/application/inference"
	"github.com/turtacn/CivicDraft/internal/config"
	"github.com/turtacn/CivicDraft/internal/domain/authority"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/CivicDraft/internal/infrastructure/render"
	"github.com/turtacn/CivicDraft/internal/intelligence/semantic"
	httpserver "github.com/turtacn/CivicDraft/internal/interfaces/http"
	"github.com/turtacn/CivicDraft/internal/interfaces/http/handlers"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file (default: env + built-in defaults)")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      cfg.Log.OutputPaths,
		ErrorOutputPaths: cfg.Log.ErrorOutputPaths,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	logger.Info("starting CivicDraft API server",
		logging.String("version", version),
		logging.String("commit", gitCommit),
		logging.Int("port", cfg.Server.Port))

	var collector prometheus.MetricsCollector
	var appMetrics *prometheus.AppMetrics
	if cfg.Metrics.Enabled {
		collector, err = prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: true,
			EnableGoMetrics:      true,
		}, logger)
		if err != nil {
			logger.Fatal("failed to build metrics collector", logging.Err(err))
		}
		appMetrics = prometheus.NewAppMetrics(collector)
	}

	embedder := semantic.NewHashingEmbedder(cfg.Semantic.EmbeddingDim, nil)
	matcher := semantic.NewMatcher(embedder, cfg.Semantic.CacheSize, logger)
	inferSvc := inference.NewService(cfg.Inference, nil, nil, nil, nil, matcher, nil, appMetrics, logger)

	assembler := draft.NewAssembler(logger)
	enhanceSvc := enhance.NewService(cfg.Enhance, enhance.NewRuleBased(), logger)
	resolver := authority.NewResolver(logger)
	exporter := render.NewExporter(logger)

	maxBody := cfg.Server.MaxBodySize
	cors, logMW, rateMW, limiter := httpserver.NewMiddleware(
		logger, appMetrics, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, cfg.Server.CORSOrigins)
	defer limiter.Stop()

	router := httpserver.NewRouter(httpserver.RouterConfig{
		InferHandler:     handlers.NewInferHandler(inferSvc, maxBody, logger),
		DraftHandler:     handlers.NewDraftHandler(assembler, appMetrics, maxBody, logger),
		AuthorityHandler: handlers.NewAuthorityHandler(resolver, logger),
		DownloadHandler:  handlers.NewDownloadHandler(exporter, appMetrics, maxBody, logger),
		EnhanceHandler:   handlers.NewEnhanceHandler(enhanceSvc, maxBody, logger),
		HealthHandler:    handlers.NewHealthHandler(version, func() bool { return true }),
		CORS:             cors,
		Logging:          logMW,
		RateLimit:        rateMW,
		MetricsCollector: collector,
	})

	srv := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("http server failed", logging.Err(err))
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown error", logging.Err(err))
	}
	logger.Info("server stopped")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}
