package main

import (
	"cineplex/api/routes"
	"cineplex/internal/fixtures"
	"cineplex/internal/notifications"
	"cineplex/internal/shared/config"
	"cineplex/internal/shared/database"
	"cineplex/pkg/cache"
	"cineplex/pkg/logger"
	"cineplex/pkg/ratelimit"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title						Cineplex API
// @version					1.0
// @description				Movie ticketing storefront and back-office API.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Rebuild now that .env and GIN_MODE pick the level and format
	logger.SetDefault(logger.New())
	appLogger = logger.GetDefault()

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if cfg.Fixtures.SeedOnStart {
		seedOnStart(cfg, db, appLogger)
	}

	// Cache: Redis when connected, process memory otherwise
	var cacheService cache.Service
	if db.Redis != nil {
		cacheService = cache.NewService(db.Redis)
	} else {
		cacheService = cache.NewMemoryService()
	}

	// Rate limiter needs Redis for its sliding window
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.Redis != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.Redis, ratelimit.NewConfig(cfg.RateLimit))
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Booking events
	publisher := notifications.NewPublisher(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			appLogger.Error("Error closing event publisher", slog.Any("error", err))
		}
	}()

	notificationCtx, notificationCancel := context.WithCancel(context.Background())
	defer notificationCancel()

	if cfg.Kafka.Enabled {
		consumer, err := notifications.NewConsumer(notifications.DefaultConsumerConfig(cfg.Kafka), notifications.NewTemplateEmailService(nil))
		if err != nil {
			appLogger.Error("Failed to initialize notification consumer", slog.Any("error", err))
			appLogger.Info("Continuing without notification consumer - booking emails will not be sent")
		} else {
			consumer.Start(notificationCtx)
			appLogger.Info("Notification consumer started", slog.String("topic", cfg.Kafka.Topic))

			defer func() {
				appLogger.Info("Stopping notification consumer...")
				if err := consumer.Stop(); err != nil {
					appLogger.Error("Error stopping notification consumer", slog.Any("error", err))
				}
			}()
		}
	}

	router := setupRouter(cfg, db, cacheService, publisher, rateLimiter)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port)),
			slog.String("version", Version),
			slog.String("build_time", BuildTime),
			slog.String("commit", GitCommit),
			slog.String("database", cfg.Database.Driver),
			slog.Bool("redis", db.Redis != nil),
			slog.Bool("kafka", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

// seedOnStart loads the generated demo universe into an empty store
func seedOnStart(cfg *config.Config, db *database.DB, appLogger *logger.Logger) {
	opts, err := fixtures.OptionsFromConfig(cfg, time.Now())
	if err != nil {
		appLogger.Error("Invalid fixture options", slog.Any("error", err))
		return
	}
	set, err := fixtures.Generate(opts)
	if err != nil {
		appLogger.Error("Failed to generate fixtures", slog.Any("error", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := fixtures.Load(ctx, db.GetSQL(), set); err != nil {
		if errors.Is(err, fixtures.ErrAlreadySeeded) {
			appLogger.Info("Store already seeded, skipping fixtures")
			return
		}
		appLogger.Error("Failed to load fixtures", slog.Any("error", err))
		return
	}

	appLogger.Info("Fixtures loaded",
		slog.Uint64("seed", opts.Seed),
		slog.Int("movies", len(set.Movies)),
		slog.Int("showtimes", len(set.Showtimes)),
		slog.Int("seat_statuses", len(set.SeatStatuses)),
	)
}

func setupRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, publisher notifications.Publisher, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(appLogger.Middleware(), gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*", logger.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", logger.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.IsDevelopment() || len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowOriginFunc = func(origin string) bool {
			return true
		}
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	engine.Use(cors.New(corsConfig))

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	appRouter := routes.NewRouter(cfg, db, cacheService, publisher)
	appRouter.SetupRoutes(engine)

	return engine
}
