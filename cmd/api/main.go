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

	pkgvalidator "github.com/johnquangdev/meetscribe/pkg/validator"

	_ "github.com/johnquangdev/meetscribe/docs"
	"github.com/johnquangdev/meetscribe/internal/adapter/handler"
	"github.com/johnquangdev/meetscribe/internal/adapter/repository"
	"github.com/johnquangdev/meetscribe/internal/infrastructure/sse"
	aiuse "github.com/johnquangdev/meetscribe/internal/usecase/ai"
	meetinguse "github.com/johnquangdev/meetscribe/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meetscribe/pkg/ai"
	"github.com/johnquangdev/meetscribe/pkg/config"
)

// @title           MeetScribe API
// @version         1.0
// @description     Meeting management and AI assistant API: participants, meetings, notes, action items and AI-backed transcription, summaries and suggestions

// @contact.name   API Support

// @BasePath  /v1

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
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize in-memory repositories with the seed dataset
	log.Println("📦 Seeding in-memory store...")
	participants := repository.SeedParticipants()
	participantRepo := repository.NewMemoryParticipantRepository(participants)
	meetingRepo := repository.NewMemoryMeetingRepository()
	if err := repository.SeedMeetings(context.Background(), meetingRepo, participants); err != nil {
		log.Fatalf("Failed to seed meetings: %v", err)
	}

	// Initialize SSE broker for revalidation events
	log.Println("📡 Initializing event broker...")
	broker := sse.NewBroker()
	defer broker.Close()

	// Initialize meeting service
	log.Println("📋 Initializing meeting service...")
	meetingService := meetinguse.NewService(meetingRepo, participantRepo, broker, logger)
	meetingController := handler.NewMeetingController(meetingService, logger)

	// Initialize AI clients and gateway
	log.Println("🤖 Initializing AI components...")
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	aiService := aiuse.NewService(meetingService, participantRepo, groqClient, asmClient, logger)
	aiController := handler.NewAIController(aiService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingController, aiController, broker)
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
