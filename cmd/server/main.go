package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/goassets/internal/adapter/http"
	"github.com/iho/goassets/internal/adapter/http/handler"
	"github.com/iho/goassets/internal/adapter/http/middleware"
	"github.com/iho/goassets/internal/adapter/repository/memory"
	redisRepo "github.com/iho/goassets/internal/adapter/repository/redis"
	"github.com/iho/goassets/internal/domain"
	"github.com/iho/goassets/internal/infrastructure/config"
	"github.com/iho/goassets/internal/infrastructure/logger"
	"github.com/iho/goassets/internal/infrastructure/memstore"
	"github.com/iho/goassets/internal/infrastructure/metrics"
	"github.com/iho/goassets/internal/infrastructure/redis"
	"github.com/iho/goassets/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{
		Level:  cfg.EffectiveLogLevel(),
		Format: cfg.LogFormat,
	})
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.EffectiveLogLevel()))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	repo, checks, cleanup, err := buildRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to initialize store")
	}
	defer cleanup()
	log.Info().Str("backend", cfg.StoreBackend).Msg("store ready")

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	domainMetrics := metrics.New(registry)
	metrics.NewAverageInterestRateGauge(registry, repo.GetAverageInterestRate)

	// Initialize use cases
	saveUC := usecase.NewSaveAssetsListUseCase(repo, domain.NewInterestRateAvgCalculator(), domainMetrics)
	avgUC := usecase.NewGetAverageInterestRateUseCase(repo)

	routerCfg := httpAdapter.RouterConfig{
		AssetsHandler: handler.NewAssetsHandler(saveUC, avgUC),
		HealthHandler: handler.NewHealthHandler(checks),
		Logger:        log.Logger,
		HTTPMetrics:   middleware.NewHTTPMetrics(registry),
		Metrics:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	if cfg.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		routerCfg.RateLimiter = limiter

		go runLimiterCleanup(ctx, limiter, time.Hour)
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      httpAdapter.NewRouter(routerCfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", cfg.HTTPPort).
			Str("title", cfg.AppTitle).
			Str("environment", cfg.Environment).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stop()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// buildRepository wires the assets list repository selected by STORE_BACKEND
// together with its readiness checks and a cleanup func.
func buildRepository(ctx context.Context, cfg *config.Config) (usecase.AssetsListRepository, map[string]handler.PingFunc, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		repo := memory.NewAssetsListRepository(memstore.New[*domain.AssetsList]())
		return repo, nil, func() {}, nil

	case config.StoreBackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisConnectTimeout)
		if err != nil {
			return nil, nil, nil, err
		}

		repo := redisRepo.NewAssetsListRepository(redisRepo.NewCache(client, cfg.RedisKeyPrefix))
		checks := map[string]handler.PingFunc{
			"redis": func(ctx context.Context) error { return client.Ping(ctx).Err() },
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close redis client")
			}
		}
		return repo, checks, cleanup, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// runLimiterCleanup resets the per-client limiters every interval until ctx is done.
func runLimiterCleanup(ctx context.Context, limiter *middleware.RateLimiter, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.CleanupLimiters()
		}
	}
}
