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

	pkgvalidator "github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/validator"

	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/adapter/handler"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/adapter/repository"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/infrastructure/cache"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/infrastructure/database"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/infrastructure/storage"
	analysisuse "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/analysis"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/analyzer"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/auth"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/export"
	meetinguse "github.com/deepikamahendran/AI-Meeting-Summarizer/internal/usecase/meeting"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/config"
	"github.com/deepikamahendran/AI-Meeting-Summarizer/pkg/jwt"
)

// @title           AI Meeting Summarizer API
// @version         1.0
// @description     API for analyzing meeting transcripts: summaries, key topics, action items, tasks and next steps

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.Migrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; schema is managed externally")
	}

	// Initialize cache store: Redis when enabled, in-memory otherwise
	var cacheStore cache.Store
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		cacheStore = redisStore
	} else {
		log.Println("📦 Using in-memory cache store")
		cacheStore = cache.NewMemoryStore()
	}

	// Initialize object storage for report export
	log.Println("🗄️  Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	jobRepo := repository.NewAnalysisJobRepository(db)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize services
	log.Println("✨ Initializing services...")
	authService := auth.NewService(userRepo, sessionRepo, jwtManager, logger)
	analyzerService := analyzer.NewService(logger)
	analysisService := analysisuse.NewService(meetingRepo, analysisRepo, jobRepo, analyzerService, cacheStore, cfg, logger)
	meetingService := meetinguse.NewService(meetingRepo, analysisRepo, jobRepo, logger)
	exportService := export.NewService(meetingRepo, analysisRepo, minioClient, logger)

	// Start background analysis workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if err := analysisService.StartWorkerPool(workerCtx, cfg.Worker.Count); err != nil {
		log.Fatalf("Failed to start worker pool: %v", err)
	}

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuth(authService, logger)
	analysisHandler := handler.NewAnalysisController(analysisService, logger)
	meetingHandler := handler.NewMeetingController(meetingService, analysisService, exportService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, jwtManager, authHandler, analysisHandler, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if err := analysisService.StopWorkerPool(); err != nil {
		log.Printf("⚠️  Worker pool shutdown: %v", err)
	}
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
