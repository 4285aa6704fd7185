// @title TestUrself API
// @version 1.0
// @description Backend for generating quiz questions from documents and evaluating free-text answers.
// @host localhost:8080
// @BasePath /
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

	"github.com/Karan28272827/testurself-backend/internal/adapter/docfetch"
	"github.com/Karan28272827/testurself-backend/internal/adapter/llm"
	"github.com/Karan28272827/testurself-backend/internal/config"
	"github.com/Karan28272827/testurself-backend/internal/handler"
	"github.com/Karan28272827/testurself-backend/internal/logger"
	"github.com/Karan28272827/testurself-backend/internal/middleware"
	"github.com/Karan28272827/testurself-backend/internal/service"
	"github.com/Karan28272827/testurself-backend/internal/validation"

	_ "github.com/Karan28272827/testurself-backend/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		requestID, _ := c.Locals(middleware.RequestIDKey).(string)
		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
			zap.String("request_id", requestID),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// The API key is required for LLM calls but its absence must not block
	// startup; requests will fail at call time instead.
	if cfg.LLM.APIKey == "" {
		appLogger.Warn("DEEPSEEK_API_KEY not set; LLM calls will fail at request time")
	}

	// Initialize the completion client
	completionClient, err := llm.NewDeepSeekClient(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized",
		zap.String("base_url", cfg.LLM.BaseURL),
		zap.String("model", cfg.LLM.Model),
	)

	// Initialize the document fetcher and single-slot question cache
	fetcher := docfetch.NewHTTPFetcher()
	docCache := service.NewDocumentCache(cfg.Cache.DocumentTTL)
	appLogger.Info("Document cache initialized", zap.Duration("ttl", cfg.Cache.DocumentTTL))

	// Initialize services and handlers
	quizService := service.NewQuizService(fetcher, completionClient, docCache)
	quizHandler := handler.NewQuizHandler(quizService, validation.NewValidator())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(middleware.CORS(cfg.CORS))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes: exact paths are part of the frontend compatibility contract
	app.Get("/", quizHandler.Root)
	app.Get("/generate-from-doc", quizHandler.GenerateFromDoc)
	app.Post("/generate-question", quizHandler.GenerateQuestion)
	app.Post("/evaluate-answer", quizHandler.EvaluateAnswer)

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
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
