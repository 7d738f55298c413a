// @title           Kanban Board API
// @version         1.0
// @description     REST API for kanban boards with columns, tickets, checklist tasks and file attachments.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/config"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/job"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/router"
	"kanban-board-api/internal/service"
)

func main() {
	// .env is optional; real deployments inject environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Kanban Board API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
	)

	m := metrics.New(logger)

	// Connect to the database; fall back to background retries so the pod
	// can come up and report not-ready until the connection succeeds
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background", zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		database.SetDB(db)
		logger.Info("Database connected successfully")

		if err := database.AutoMigrate(db); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}

		database.RegisterMetricsCallbacks(db, m)
		defer close(database.StartDBStatsCollector(db, m))
	}

	// Redis backs the token denylist; without it logout degrades to a no-op
	if cfg.Redis.URL != "" {
		if err := database.InitRedis(cfg.Redis.URL); err != nil {
			logger.Warn("Failed to connect to Redis, logout denylist disabled", zap.Error(err))
		} else {
			logger.Info("Redis connected successfully")
			defer database.CloseRedis()
		}
	} else {
		logger.Warn("Redis not configured, logout denylist disabled")
	}

	// S3 backs attachments; without it attachment endpoints report 503
	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3, err := client.NewS3Client(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, attachments disabled", zap.Error(err))
		} else {
			s3Client = s3
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, attachments disabled")
	}

	userRepo := repository.NewUserRepository(database.GetDB())
	boardRepo := repository.NewBoardRepository(database.GetDB())
	columnRepo := repository.NewColumnRepository(database.GetDB())
	ticketRepo := repository.NewTicketRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	attachmentRepo := repository.NewAttachmentRepository(database.GetDB())

	authService := service.NewAuthService(userRepo, database.GetRedis(), cfg.JWT.Secret, cfg.JWT.TTL, m)
	boardService := service.NewBoardService(boardRepo, m)
	columnService := service.NewColumnService(columnRepo, boardRepo)
	ticketService := service.NewTicketService(ticketRepo, columnRepo, m)
	taskService := service.NewTaskService(taskRepo, ticketRepo, m)
	attachmentService := service.NewAttachmentService(attachmentRepo, ticketRepo, s3Client, m)

	if s3Client != nil {
		cleanup := job.NewCleanupJob(attachmentRepo, s3Client, logger, m)
		cron := cleanup.Schedule()
		defer cron.Stop()
		logger.Info("Attachment cleanup job scheduled")
	}

	r := router.Setup(&router.Dependencies{
		Config:            cfg,
		Logger:            logger,
		Metrics:           m,
		AuthHandler:       handler.NewAuthHandler(authService),
		BoardHandler:      handler.NewBoardHandler(boardService),
		ColumnHandler:     handler.NewColumnHandler(columnService),
		TicketHandler:     handler.NewTicketHandler(ticketService),
		TaskHandler:       handler.NewTaskHandler(taskService),
		AttachmentHandler: handler.NewAttachmentHandler(attachmentService),
		TokenVerifier:     authService,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Kanban Board API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if db := database.GetDB(); db != nil {
		if err := database.Close(db); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
