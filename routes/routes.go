package routes

import (
	"context"
	"time"

	"earnings/cache"
	"earnings/client"
	"earnings/config"
	"earnings/controller"
	"earnings/middleware"
	"earnings/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func SetupRouter(ctx context.Context, cfg *config.SystemConfigs) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(cfg.Config))

	timeout := time.Duration(cfg.Config.RequestTimeoutSec) * time.Second

	// --- 1. Clients ---
	finnhubClient := client.NewFinnhubClient(cfg.Config.FinnhubApiKey, timeout)
	alphaVantageClient := client.NewAlphaVantageClient(cfg.Config.AlphaVantageApiKey, timeout).
		WithRateLimit(cfg.Config.AlphaVantageMaxRPM)

	// --- 2. Cache ---
	store := cache.New(
		time.Duration(cfg.Config.CacheTTLMinutes)*time.Minute,
		cache.DefaultCleanupInterval,
		cfg.Config.CacheMaxItems,
	)

	// --- 3. Services (Dependency Injection) ---
	quoteSvc := service.NewQuoteService(finnhubClient, store)
	earningsSvc := service.NewEarningsService(
		alphaVantageClient,
		finnhubClient,
		store,
		time.Duration(cfg.Config.NullResultTTLSec)*time.Second,
	)
	summarySvc := service.NewSummaryService(
		textGenerator(ctx, cfg),
		time.Duration(cfg.Config.SummaryTimeoutSec)*time.Second,
	)
	reportSvc := service.NewEarningsReportService(quoteSvc, earningsSvc, summarySvc, cfg.Config.BatchConcurrency)

	// --- 4. Routes & Controllers ---
	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController(cfg.Config).RegisterRoutes(api)

		// Earnings Endpoints
		controller.NewEarningsController(reportSvc, cfg.Config.MaxBatchSymbols).RegisterRoutes(api)
	}

	return r
}

// textGenerator picks the LLM backend. OpenAI wins when both keys are set;
// with neither, summaries come from the local template.
func textGenerator(ctx context.Context, cfg *config.SystemConfigs) service.TextGenerator {
	timeout := time.Duration(cfg.Config.SummaryTimeoutSec) * time.Second

	if cfg.Config.OpenAiApiKey != "" {
		log.Info().Str("provider", "openai").Msg("summary generator configured")
		return client.NewOpenAIClient(cfg.Config.OpenAiApiKey, cfg.Config.OpenAiModel, timeout)
	}

	if cfg.Config.GeminiApiKey != "" {
		gemini, err := client.NewGeminiClient(ctx, cfg.Config.GeminiApiKey, cfg.Config.GeminiModel, timeout)
		if err != nil {
			log.Error().Err(err).Msg("gemini client unavailable, using template summaries")
			return nil
		}
		log.Info().Str("provider", "gemini").Msg("summary generator configured")
		return gemini
	}

	log.Warn().Msg("no LLM key configured, using template summaries")
	return nil
}
