// @title Topic Quiz API
// @version 1.0
// @description Generates a five question quiz for any topic, walks the user through it and
// @description returns a score, a proficiency tier and learning recommendations.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"topic-quiz/internal/adapter"
	"topic-quiz/internal/adapter/quizgen"
	"topic-quiz/internal/cache"
	"topic-quiz/internal/config"
	"topic-quiz/internal/database"
	"topic-quiz/internal/domain"
	"topic-quiz/internal/handler"
	"topic-quiz/internal/llm"
	"topic-quiz/internal/logger"
	"topic-quiz/internal/middleware"
	"topic-quiz/internal/repository"
	"topic-quiz/internal/service"
	"topic-quiz/internal/validation"

	_ "topic-quiz/cmd/api/docs"

	"github.com/gofiber/swagger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Session store: Redis when configured, in-process otherwise
	var sessionCache domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		sessionCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Using Redis session store", zap.String("address", cfg.Redis.Address))
	} else {
		sessionCache = adapter.NewMemoryCache()
		appLogger.Warn("No redis.address configured; sessions are kept in memory")
	}
	sessionRepository := repository.NewCacheSessionRepository(sessionCache, cfg.Session.TTL)

	// Attempt history
	var (
		historyDB         *sqlx.DB
		attemptRepository domain.AttemptRepository
	)
	if cfg.History.Enabled {
		historyDB, err = database.NewSQLXDB(cfg.History)
		if err != nil {
			appLogger.Fatal("Failed to connect to history database", zap.Error(err))
		}
		defer historyDB.Close()
		if err := database.RunMigrations(historyDB.DB); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
		attemptRepository = repository.NewSQLXAttemptRepository(historyDB)
	}

	// Language model
	providers, err := llm.NewFactory(ctx, cfg.LLM, cfg.Intake.RequireAPIKey)
	if err != nil {
		appLogger.Fatal("Failed to create LLM provider", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
	}
	generator := quizgen.NewGenerator(providers, cfg.LLM.Temperature)
	appLogger.Info("LLM provider initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model),
		zap.Bool("client_keys", cfg.Intake.RequireAPIKey))

	// Initialize services
	sessionService := service.NewSessionService(sessionRepository, cfg.Intake.RequireAPIKey)
	quizService := service.NewQuizService(sessionRepository, generator, cfg.Quiz.QuestionCount, cfg.LLM.Timeout)
	resultService := service.NewResultService(sessionRepository, generator, attemptRepository)

	validator, err := validation.NewValidator()
	if err != nil {
		appLogger.Fatal("Failed to create validator", zap.Error(err))
	}

	app := handler.NewApp(cfg.Server)
	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.Routes{
		Session:    handler.NewSessionHandler(sessionService, cfg.Session),
		Quiz:       handler.NewQuizHandler(quizService),
		Result:     handler.NewResultHandler(resultService),
		Health:     handler.NewHealthHandler(sessionCache, historyDB),
		Validation: middleware.NewValidationMiddleware(validator),
		Cookie:     cfg.Session,
	}.Register(app)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
