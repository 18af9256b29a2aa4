package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"ailiteracy/internal/cache"
	"ailiteracy/internal/config"
	"ailiteracy/internal/repository"
	"ailiteracy/internal/service"
	"ailiteracy/internal/store"
	"ailiteracy/internal/transport/rest"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	aiCfg := config.LoadAIConfig()
	if err := aiCfg.Validate(); err != nil {
		logger.Fatal("invalid AI configuration", zap.Error(err))
	}

	ctx := context.Background()

	// Assessor model client
	var llm service.LLMClient
	if aiCfg.UseMock {
		logger.Info("using mock assessor model")
		llm = service.NewMockLLMClient()
	} else {
		logger.Info("using Azure OpenAI assessor model",
			zap.String("deployment", aiCfg.Deployment))
		llm = service.NewAzureOpenAIClient(aiCfg)
	}

	// Persistence sinks, each enabled by its setting
	var reportRepo repository.ReportRepo
	if cfg.SQLitePath != "" {
		reportRepo, err = repository.NewSQLiteReportRepo(cfg.SQLitePath)
		if err != nil {
			logger.Fatal("failed to open report database", zap.Error(err))
		}
		defer reportRepo.Close()
		logger.Info("report rows enabled", zap.String("path", cfg.SQLitePath))
	}

	var archiveRepo repository.ArchiveRepo
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			cancel()
			logger.Fatal("failed to ping MongoDB", zap.Error(err))
		}
		cancel()

		archiveRepo = repository.NewArchiveRepo(mongoClient.Database(cfg.MongoDatabase))
		logger.Info("transcript archive enabled", zap.String("database", cfg.MongoDatabase))
	}

	var reportCache cache.ReportCache
	if cfg.RedisURI != "" {
		redisAddr := cfg.RedisURI
		if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
			redisAddr = redisAddr[8:]
		}
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			logger.Fatal("failed to ping Redis", zap.Error(err))
		}
		reportCache = cache.NewReportCache(rdb)
		logger.Info("report cache enabled")
	}

	// Services
	sessions := store.NewSessionStore()
	authSvc := service.NewAuthService(cfg)
	assessorSvc := service.NewAssessorService(llm, logger)
	persistSvc := service.NewPersistService(reportRepo, archiveRepo, reportCache, logger)
	sessionSvc := service.NewSessionService(sessions, assessorSvc, persistSvc, logger)

	router := rest.NewRouter(&rest.Container{
		Config:         cfg,
		AuthService:    authSvc,
		SessionService: sessionSvc,
		PersistService: persistSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.Bool("accessGate", authSvc.Enabled()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
