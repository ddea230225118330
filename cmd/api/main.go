package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"boardapi/internal/config"
	"boardapi/internal/database"
	"boardapi/internal/database/migration"
	handlers "boardapi/internal/http/handler"
	"boardapi/internal/http/middleware"
	"boardapi/internal/otel"
	"boardapi/internal/pkg/logctx"
	"boardapi/internal/repository/postgres"
	"boardapi/internal/service"
)

// @title Board API
// @version 1.0
// @description Paginated, searchable discussion board.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	loc, _ := cfg.Location()

	logger := logctx.NewJSON(os.Stdout, loc)
	slog.SetDefault(logger)

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	boardMetrics, err := service.NewMetrics(reg)
	if err != nil {
		log.Fatalf("failed to register board metrics: %v", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	// Initialize repositories and services
	postRepo := postgres.NewPostPostgres(db)
	boardSvc := service.NewBoardService(postRepo, service.Options{
		PageSize:   cfg.Board.PageSize,
		BlockSize:  cfg.Board.BlockSize,
		BcryptCost: cfg.Board.BcryptCost,
		Metrics:    boardMetrics,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(middleware.ContextLogger(logger))
	app.Use(httpMetrics.Handler())

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, boardSvc)
	app.Get("/metrics", handlers.MetricsHandler(reg))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", handlers.SwaggerUI(cfg.AppHost))

	addr := ":" + cfg.Port
	logger.Info("server_starting", slog.String("addr", addr), slog.Int("page_size", cfg.Board.PageSize))

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
