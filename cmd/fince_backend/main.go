package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/fince/cmd/docs"
	"github.com/SscSPs/fince/internal/adapters/ai/gemini"
	"github.com/SscSPs/fince/internal/adapters/database"
	"github.com/SscSPs/fince/internal/core/services"
	"github.com/SscSPs/fince/internal/dto"
	"github.com/SscSPs/fince/internal/handlers"
	"github.com/SscSPs/fince/internal/middleware"
	"github.com/SscSPs/fince/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title Fince API
// @version 1.0
// @description Personal ledger with AI-assisted transaction entry, savings goals and recurring obligations.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, err := database.NewRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := repos.Close(context.Background()); cerr != nil {
			logger.Error("Error closing storage", slog.String("error", cerr.Error()))
		}
	}()

	generator, err := gemini.NewClientGenerator(ctx, cfg.GeminiAPIKey)
	if err != nil {
		logger.Error("Failed to initialize Gemini client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(
		cfg,
		repos,
		gemini.NewExtractor(generator, cfg.ExtractionModel),
		gemini.NewAdvisor(generator, cfg.AdviceModel),
	)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			logger.Error("Failed to register validators", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}

	// Global middleware (cors, rate limit, logging, recovery)
	r.Use(
		cors.New(corsConfig),
		middleware.RateLimit(rateLimiter),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage_backend", cfg.StorageBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
