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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/stationprep/consult-assistant/pkg/validator"

	_ "github.com/stationprep/consult-assistant/docs"
	"github.com/stationprep/consult-assistant/internal/adapter/handler"
	"github.com/stationprep/consult-assistant/internal/adapter/repository"
	"github.com/stationprep/consult-assistant/internal/infrastructure/cache"
	"github.com/stationprep/consult-assistant/internal/infrastructure/database"
	httpmw "github.com/stationprep/consult-assistant/internal/infrastructure/http/middleware"
	assessmentUsecase "github.com/stationprep/consult-assistant/internal/usecase/assessment"
	coachUsecase "github.com/stationprep/consult-assistant/internal/usecase/coach"
	pkgai "github.com/stationprep/consult-assistant/pkg/ai"
	"github.com/stationprep/consult-assistant/pkg/config"
	pkglogger "github.com/stationprep/consult-assistant/pkg/logger"
)

// @title           Consult Assistant API
// @version         1.0
// @description     Grades simulated patient consultations and coaches candidates on the feedback.

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Log)
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

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Request correlation
	e.Use(httpmw.RequestID())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Request-ID", "X-Correlation-ID"},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize transcript cache. Redis when configured, in-process otherwise.
	var transcripts cache.Store
	if cfg.Redis.Host != "" {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		transcripts = redisStore
	} else {
		log.Println("📦 Redis not configured, using in-process transcript cache")
		transcripts = cache.NewMemoryStore()
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	assessmentRepo := repository.NewAssessmentRepository(db)
	coachRepo := repository.NewCoachRepository(db)

	// Initialize AI clients
	log.Println("🤖 Initializing AI clients...")
	voiceClient := pkgai.NewElevenLabsClient(&cfg.ElevenLabs)
	geminiClient := pkgai.NewGeminiClient(&cfg.Gemini)

	// Initialize services
	log.Println("✨ Initializing services...")
	assessmentService := assessmentUsecase.NewService(voiceClient, geminiClient, assessmentRepo, transcripts, cfg, logger)
	coachService := coachUsecase.NewService(geminiClient, coachRepo, cfg, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, logger)
	coachHandler := handler.NewCoachHandler(coachService, logger)
	casesHandler := handler.NewCasesHandler(logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, assessmentHandler, coachHandler, casesHandler)
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

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
