package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/accrahealth/carebot/internal/api"
	"github.com/accrahealth/carebot/internal/assistant"
	"github.com/accrahealth/carebot/internal/booking"
	appconfig "github.com/accrahealth/carebot/internal/config"
	"github.com/accrahealth/carebot/internal/dialogue"
	"github.com/accrahealth/carebot/internal/history"
	"github.com/accrahealth/carebot/internal/locale"
	"github.com/accrahealth/carebot/internal/model"
	"github.com/accrahealth/carebot/internal/observability/metrics"
	"github.com/accrahealth/carebot/internal/search"
	"github.com/accrahealth/carebot/pkg/logging"
)

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting carebot API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Content index and booking catalog.
	engine := search.NewEngine(search.DefaultSources(), logger)
	services := bookableServices(engine)

	// Observability.
	registry := prometheus.NewRegistry()
	convMetrics := metrics.NewConversationMetrics(registry)

	// Model providers: each one is registered even without credentials so
	// the router's availability cache reflects the deployment.
	providers := buildProviders(ctx, cfg, logger)
	router := model.NewRouter(providers, cfg.RouterTimeout, logger, convMetrics)
	router.Refresh(ctx)

	// Optional transcript archive.
	var archive *history.Archive
	if cfg.RedisAddr != "" {
		opts := &redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		archive = history.NewArchive(redis.NewClient(opts))
		logger.Info("transcript archive enabled", "addr", cfg.RedisAddr)
	}

	submitter := booking.NewMemorySubmitter(logger)
	manager := dialogue.NewManager(services, submitter, logger)

	a := assistant.New(assistant.Options{
		Detector:       locale.NewDetector(),
		Search:         engine,
		Dialogue:       manager,
		Router:         router,
		Archive:        archive,
		Metrics:        convMetrics,
		Logger:         logger,
		DefaultLocale:  cfg.DefaultLocale,
		AutoDetect:     cfg.AutoDetectLocale,
		VoiceThreshold: cfg.VoiceConfidenceThreshold,
		HistoryLimit:   cfg.HistoryLimit,
	})

	handler := api.NewHandler(a, engine, logger)
	r := api.NewRouter(api.RouterConfig{
		Handler:            handler,
		Logger:             logger,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// buildProviders registers every configured backend in preference order.
func buildProviders(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) []model.Provider {
	providers := []model.Provider{
		model.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModelID),
	}

	gemini, err := model.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID)
	if err != nil {
		logger.Error("gemini provider init failed", "error", err)
	} else {
		providers = append(providers, gemini)
	}

	bedrock := model.NewBedrockProvider(nil, cfg.BedrockModelID)
	if cfg.AWSRegion != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Error("aws config load failed", "error", err)
		} else {
			bedrock = model.NewBedrockProvider(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID)
		}
	}
	providers = append(providers, bedrock)

	return providers
}

// bookableServices derives the dialogue catalog from the indexed service
// content so the chat offers exactly what the site lists.
func bookableServices(engine *search.Engine) []dialogue.Service {
	var services []dialogue.Service
	for _, src := range search.DefaultSources() {
		if src.Type != search.TypeService {
			continue
		}
		item, ok := engine.Get(src.ID)
		if !ok {
			continue
		}
		services = append(services, dialogue.Service{
			ID:      item.ID,
			Name:    item.Title,
			Aliases: item.Keywords,
		})
	}
	return services
}
