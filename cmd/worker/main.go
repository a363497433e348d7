package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/travel-journal-service/internal/config"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/pkg/logger"
	"github.com/travel-journal-service/internal/repository/cache"
	"github.com/travel-journal-service/internal/repository/memory"
	"github.com/travel-journal-service/internal/repository/postgres"
	redisrepo "github.com/travel-journal-service/internal/repository/redis"
	"github.com/travel-journal-service/internal/usecase"
	"github.com/travel-journal-service/internal/worker"
	"github.com/travel-journal-service/internal/worker/journal"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Travel Journal Worker")

	// 3. Initialize storage (same drivers as the API)
	var (
		tripRepo     repository.TripRepository
		locationRepo repository.LocationRepository
		photoRepo    repository.PhotoRepository
	)

	switch cfg.Storage.Driver {
	case "postgres":
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		tripRepo = postgres.NewTripRepository(db)
		locationRepo = postgres.NewLocationRepository(db)
		photoRepo = postgres.NewPhotoRepository(db)
		log.Info("PostgreSQL connected")
	default:
		store := memory.NewStore(&cfg.Storage, log)
		tripRepo = memory.NewTripRepository(store)
		locationRepo = memory.NewLocationRepository(store)
		photoRepo = memory.NewPhotoRepository(store)
		log.Info("In-memory store initialized",
			zap.Bool("seeded", cfg.Storage.Seed))
		log.Warn("In-memory store is process-local, the worker sees its own copy of the data")
	}

	// 4. Connect to Redis (required for the worker)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	healthCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Health(healthCtx); err != nil {
		cancel()
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	cancel()
	log.Info("Redis connected")

	statsCacheRepo := cache.NewStatsCacheRepository(redisClient)
	streamRepo := redisrepo.NewStreamRepository(redisClient.Client(), log)

	// 5. Build the stats use case the worker drives
	statsUC := usecase.NewStatsUseCase(tripRepo, locationRepo, photoRepo, statsCacheRepo, cfg.Cache.TripStatsTTL, log)

	// 6. Register and start workers
	manager := worker.NewWorkerManager(log)
	manager.Register(journal.NewStatsRefreshWorker(streamRepo, statsUC, cfg.Worker.ConsumerGroup, log))

	ctx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")
	cancelWorkers()

	if err := manager.Stop(); err != nil {
		log.Error("Worker shutdown failed", zap.Error(err))
	}

	log.Info("Worker stopped")
}
