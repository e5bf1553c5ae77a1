package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Aidin1998/rosterhub/api"
	"github.com/Aidin1998/rosterhub/internal/config"
	"github.com/Aidin1998/rosterhub/internal/database"
	"github.com/Aidin1998/rosterhub/internal/players"
	"github.com/Aidin1998/rosterhub/internal/telemetry"
	"github.com/Aidin1998/rosterhub/pkg/logger"
	"github.com/Aidin1998/rosterhub/pkg/metrics"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create logger
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: "rosterhub",
		Tracing:     cfg.Telemetry.Tracing,
		Metrics:     cfg.Telemetry.Metrics,
	})
	if err != nil {
		zapLogger.Fatal("Failed to set up telemetry", zap.Error(err))
	}

	db, err := database.Open(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := metrics.RegisterDBStats(sqlDB, "rosterhub"); err != nil {
			zapLogger.Warn("Failed to register database metrics", zap.Error(err))
		}
	}

	var store players.Store = players.NewGormStore(db)

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		store = players.NewCachedStore(store, redisClient, cfg.Redis.TTL, zapLogger)
		zapLogger.Info("Player cache enabled", zap.String("address", cfg.Redis.Address))
	}

	var events players.EventPublisher = players.NopPublisher{}
	if cfg.Kafka.Enabled {
		events = players.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		zapLogger.Info("Player events enabled", zap.String("topic", cfg.Kafka.Topic))
	}

	svc := players.NewService(store, events, zapLogger)
	server := api.NewServer(zapLogger, db, svc, api.Options{AllowedOrigins: cfg.Server.AllowedOrigins})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Server)
	}()

	select {
	case <-ctx.Done():
		zapLogger.Info("Shutting down server...")
	case err := <-errCh:
		if err != nil {
			zapLogger.Error("API server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to stop API server", zap.Error(err))
	}
	if err := events.Close(); err != nil {
		zapLogger.Error("Failed to close event publisher", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zapLogger.Error("Failed to close Redis client", zap.Error(err))
		}
	}
	if err := database.Close(db); err != nil {
		zapLogger.Error("Failed to close database", zap.Error(err))
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		zapLogger.Error("Failed to flush telemetry", zap.Error(err))
	}

	zapLogger.Info("Server exited properly")
}
