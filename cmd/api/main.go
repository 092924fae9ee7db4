package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	httpmw "github.com/johnquangdev/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-summarizer/internal/summarizer"
	aiuse "github.com/johnquangdev/meeting-summarizer/internal/usecase/ai"
	pkgai "github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// @title           Meeting Summarizer API
// @version         1.0
// @description     Summarizes meeting notes and recordings into topics, decisions and action items.

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())
	e.Use(httpmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize dependencies
	logger.Info("🔧 Initializing dependencies...")
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()

	checks := make(map[string]handler.Pinger)

	// Local summarizer
	opts := []summarizer.Option{summarizer.WithBudget(cfg.Summarizer.MaxInputChars)}
	if path := cfg.Summarizer.LexiconPath; path != "" {
		logger.Info("📖 Loading lexicon override", zap.String("path", path))
		lex, err := summarizer.LoadLexiconFile(path)
		if err != nil {
			logger.Fatal("Failed to load lexicon", zap.Error(err))
		}
		opts = append(opts, summarizer.WithLexicon(lex))
	}
	local, err := summarizer.New(opts...)
	if err != nil {
		logger.Fatal("Failed to build local summarizer", zap.Error(err))
	}

	// Remote collaborators
	logger.Info("🤖 Initializing AI components...",
		zap.String("summarizer", cfg.Summarizer.Provider),
		zap.String("transcriber", cfg.Transcription.Provider),
	)
	chat, err := pkgai.NewChatClient(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize summarizer provider", zap.Error(err))
	}
	transcriber := pkgai.NewTranscriber(cfg, logger)

	// Summary cache
	var store cache.Store
	if cfg.Redis.Enabled {
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.RedisAddr()))
		redisStore, err := cache.NewRedisStore(initCtx, cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		store = redisStore
		checks["redis"] = redisStore
	} else {
		logger.Info("📦 Using in-memory summary cache")
		store = cache.NewMemoryStore(time.Minute)
	}
	defer store.Close()

	// Archive
	var archive aiuse.Archiver
	var archiveHandler *handler.Archive
	if cfg.Storage.Enabled {
		logger.Info("🗄️  Connecting to object storage...", zap.String("endpoint", cfg.Storage.Endpoint))
		minioClient, err := storage.NewMinIOClient(initCtx, &cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		archive = minioClient
		archiveHandler = handler.NewArchiveHandler(minioClient, logger)
		checks["storage"] = minioClient
	}

	aiService := aiuse.NewAIService(cfg, local, chat, transcriber, store, archive, logger)
	summaryHandler := handler.NewSummaryHandler(aiService, logger, handler.DefaultMaxAudioBytes)

	// Setup router with handlers
	logger.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, summaryHandler, archiveHandler, checks)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
