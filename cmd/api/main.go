// Sleep Diary API
//
// REST API for a personal sleep diary: nightly records, statistics and
// AI-assisted advice.
//
//	@title			Sleep Diary API
//	@version		1.0
//	@description	Track nightly sleep with clock times and quality ratings, aggregate statistics, and generate personalized advice.
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//
//	@tag.name			auth
//	@tag.description	Accounts and login sessions
//
//	@tag.name			sleep-records
//	@tag.description	Nightly sleep record endpoints
//
//	@tag.name			statistics
//	@tag.description	Aggregated sleep statistics
//
//	@tag.name			advice
//	@tag.description	Personalized sleep advice
package main

import (
	"context"
	"net/http"
	"time"

	"github.com/slumberlog/sleep-diary/internal/api"
	"github.com/slumberlog/sleep-diary/internal/api/handler"
	"github.com/slumberlog/sleep-diary/internal/config"
	"github.com/slumberlog/sleep-diary/internal/domain"
	"github.com/slumberlog/sleep-diary/internal/langfuse"
	"github.com/slumberlog/sleep-diary/internal/llm"
	"github.com/slumberlog/sleep-diary/internal/logging"
	"github.com/slumberlog/sleep-diary/internal/repository"
	"github.com/slumberlog/sleep-diary/internal/seed"
	"github.com/slumberlog/sleep-diary/internal/service"
	"github.com/slumberlog/sleep-diary/internal/telemetry"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-diary-api")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracer(shutdownCtx)
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Session{}, &domain.SleepRecord{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database migration completed")

	if cfg.Seed {
		logger.Info("seeding database with sample data")
		if err := seed.Run(db, logger); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Langfuse ingestion client (no-op when not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}, logger)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	sleepRecordRepo := repository.NewSleepRecordRepository(db)

	// Optionally pull the advice system prompt from Langfuse prompt management.
	systemPrompt := ""
	if cfg.AdvicePromptName != "" || cfg.AdvicePromptSave != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.AdvicePromptName,
			PromptLabel: cfg.AdvicePromptLabel,
			SavePath:    cfg.AdvicePromptSave,
		}, logger)
		if err != nil {
			logger.Warn("using built-in advice prompt", zap.Error(err))
		} else {
			systemPrompt = prompt
		}
	}

	// OpenAI client (nil when not configured; advice falls back to rules)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIAdviceModel, systemPrompt)
	var adviceLLM llm.AdviceLLM
	if openaiClient != nil {
		adviceLLM = openaiClient
	} else {
		logger.Warn("OPENAI_API_KEY not configured, advice will use the deterministic fallback")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, sessionRepo, time.Duration(cfg.SessionTTLHours)*time.Hour)
	sleepRecordService := service.NewSleepRecordService(sleepRecordRepo)
	statisticsService := service.NewStatisticsService(sleepRecordRepo)
	adviceService := service.NewAdviceService(
		sleepRecordRepo,
		adviceLLM,
		time.Duration(cfg.AdviceTimeoutSecs)*time.Second,
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	sleepRecordHandler := handler.NewSleepRecordHandler(sleepRecordService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	adviceHandler := handler.NewAdviceHandler(adviceService, langfuseClient)

	// Setup router
	router := api.NewRouter(logger, authService, authHandler, sleepRecordHandler, statisticsHandler, adviceHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	logger.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
