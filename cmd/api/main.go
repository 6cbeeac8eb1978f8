package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gregory-bot/telecurehospital/internal/adapters/cache"
	"github.com/gregory-bot/telecurehospital/internal/adapters/database"
	"github.com/gregory-bot/telecurehospital/internal/adapters/events"
	"github.com/gregory-bot/telecurehospital/internal/api/handlers"
	"github.com/gregory-bot/telecurehospital/internal/api/routes"
	"github.com/gregory-bot/telecurehospital/internal/application/services"
	"github.com/gregory-bot/telecurehospital/internal/domain/providers"
	"github.com/gregory-bot/telecurehospital/internal/domain/vocabulary"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/clients/postgres"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/clients/redis"
	"github.com/gregory-bot/telecurehospital/internal/infrastructure/observability"
	"github.com/gregory-bot/telecurehospital/internal/triage"
	"github.com/gregory-bot/telecurehospital/pkg/config"
	"github.com/gregory-bot/telecurehospital/pkg/retry"
	"github.com/gregory-bot/telecurehospital/pkg/secrets"
)

func main() {
	// Export Vault secrets into the environment before reading it
	vaultResult, err := secrets.ApplyVaultSecrets(context.Background(), secrets.LoadVaultConfigFromEnv(), retry.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load Vault secrets: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Environment, cfg.Server.LogLevel)
	if len(vaultResult.Loaded) > 0 || len(vaultResult.Skipped) > 0 {
		log.Info().Strs("loaded", vaultResult.Loaded).Strs("skipped", vaultResult.Skipped).Msg("Vault secrets applied")
	}

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
			observability.SetupOptions{ExportLogs: cfg.OTEL.LogsEnabled},
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Vocabulary and analyzer
	var vocabOpts []vocabulary.Option
	if cfg.Triage.FeeSchedulePath != "" {
		vocabOpts = append(vocabOpts, vocabulary.WithFeeOverrides(cfg.Triage.FeeSchedulePath))
	}
	vocab, err := vocabulary.Load(vocabOpts...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load triage vocabulary")
	}

	classifierOpts, err := classifierOptions(&cfg.Triage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load model parameters")
	}
	analyzer := triage.NewAnalyzer(vocab, classifierOpts...)

	if cfg.Triage.WarmOnStart {
		if err := analyzer.Warm(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize condition classifier")
		}
	}
	log.Info().
		Str("model_id", analyzer.ModelID()).
		Int("symptoms", vocab.SymptomCount()).
		Int("conditions", vocab.ConditionCount()).
		Msg("symptom analyzer ready")

	// Initialize Redis client when a Redis-backed feature is on
	var redisClient *redis.Client
	if cfg.Triage.CacheEnabled || cfg.Triage.EscalationsEnabled {
		redisClient, err = redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			// Continue without Redis: analyses still work uncached and unescalated
			log.Warn().Err(err).Msg("failed to initialize Redis client")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
		}
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil && cfg.Triage.CacheEnabled {
		cacheProvider = cache.NewRedisAdapter(redisClient, "telecure")
	}

	var eventBus providers.EventBus
	if redisClient != nil && cfg.Triage.EscalationsEnabled {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("escalation event bus initialized")
	} else {
		log.Info().Msg("escalation event bus disabled")
	}

	// Review queue
	var reviewService *services.ReviewService
	if cfg.Triage.ReviewQueueEnabled {
		var pgClient *postgres.Client
		reviewService, pgClient = startReviewQueue(ctx, cfg, metrics, eventBus)
		if pgClient != nil {
			defer pgClient.Close()
		}
	}

	// Initialize services
	analysisService := services.NewAnalysisService(analyzer, services.AnalysisServiceConfig{
		Cache:         cacheProvider,
		CacheTTL:      cfg.Triage.ResultCacheTTL,
		EventBus:      eventBus,
		Metrics:       metrics,
		MaxTextLength: cfg.Triage.MaxSymptomTextLength,
	})

	// Initialize handlers
	triageHandler := handlers.NewTriageHandler(analysisService, vocab)

	var reviewQueue handlers.ReviewQueue
	if reviewService != nil {
		reviewQueue = reviewService
	}
	reviewHandler := handlers.NewReviewHandler(reviewQueue)

	// Set up router
	router := routes.NewRouter(triageHandler, reviewHandler, cfg.Server.AllowedOrigins, metrics)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	// Stop consuming before the bus goes away
	if reviewService != nil {
		reviewService.Stop()
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("error closing event bus")
		}
	}

	log.Info().Msg("server stopped")
}

// classifierOptions resolves the configured model source and logs which one won.
func classifierOptions(cfg *config.TriageConfig) ([]triage.ClassifierOption, error) {
	opts, err := modelSource(cfg).Options()
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.ModelParametersPath != "":
		log.Info().Str("path", cfg.ModelParametersPath).Msg("loaded model parameters")
	case !cfg.HasModelSeed:
		log.Warn().Msg("MODEL_SEED not set; classifier weights are random for this process")
	}
	return opts, nil
}

func modelSource(cfg *config.TriageConfig) triage.ModelSource {
	return triage.ModelSource{
		ParametersPath: cfg.ModelParametersPath,
		Seed:           cfg.ModelSeed,
		HasSeed:        cfg.HasModelSeed,
	}
}

// startReviewQueue connects PostgreSQL and starts consuming escalations.
// It returns nils when the queue cannot start; the review endpoints then answer 503.
func startReviewQueue(ctx context.Context, cfg *config.Config, metrics *observability.Metrics, eventBus providers.EventBus) (*services.ReviewService, *postgres.Client) {
	if eventBus == nil {
		log.Warn().Msg("review queue requires the escalation event bus; review queue disabled")
		return nil, nil
	}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize PostgreSQL client; review queue disabled")
		return nil, nil
	}

	adapter := database.NewReviewCaseAdapter(pgClient, metrics)
	if err := adapter.EnsureSchema(ctx); err != nil {
		log.Error().Err(err).Msg("failed to ensure review case schema; review queue disabled")
		_ = pgClient.Close()
		return nil, nil
	}

	reviewService := services.NewReviewService(adapter, eventBus)
	if err := reviewService.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start review queue")
		_ = pgClient.Close()
		return nil, nil
	}
	return reviewService, pgClient
}
