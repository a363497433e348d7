package main

// @title Travel Journal Service API
// @version 1.0.0
// @description Backend for a personal travel journal: trips, locations and photos
// @description with derived trip statistics and a staged photo-upload flow.
// @description
// @description Main capabilities:
// @description - Trip, location and photo CRUD with derived rating and photo count per trip
// @description - Batch photo upload with per-file acceptance and EXIF coordinate extraction
// @description - Pluggable storage: in-memory seeded store or PostgreSQL
// @description - Optional Redis stats cache and upload event stream

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/travel-journal-service/internal/config"
	httpDelivery "github.com/travel-journal-service/internal/delivery/http"
	"github.com/travel-journal-service/internal/delivery/http/handler"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/infrastructure/exif"
	"github.com/travel-journal-service/internal/pkg/logger"
	"github.com/travel-journal-service/internal/repository/cache"
	"github.com/travel-journal-service/internal/repository/memory"
	"github.com/travel-journal-service/internal/repository/postgres"
	redisrepo "github.com/travel-journal-service/internal/repository/redis"
	"github.com/travel-journal-service/internal/usecase"
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

	log.Info("Starting Travel Journal Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	// 3. Initialize storage
	var (
		tripRepo     repository.TripRepository
		locationRepo repository.LocationRepository
		photoRepo    repository.PhotoRepository
		health       httpDelivery.HealthFunc
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
		health = db.Health
		log.Info("PostgreSQL connected")
	default:
		store := memory.NewStore(&cfg.Storage, log)
		tripRepo = memory.NewTripRepository(store)
		locationRepo = memory.NewLocationRepository(store)
		photoRepo = memory.NewPhotoRepository(store)
		health = store.Health
		log.Info("In-memory store initialized", zap.Bool("seeded", cfg.Storage.Seed))
	}

	// 4. Connect to Redis (optional)
	var (
		statsCacheRepo repository.StatsCacheRepository
		streamRepo     repository.StreamRepository
	)
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		statsCacheRepo = cache.NewStatsCacheRepository(redisClient)
		streamRepo = redisrepo.NewStreamRepository(redisClient.Client(), log)
		log.Info("Redis connected")
	} else {
		log.Info("Redis disabled, stats cache and upload events are off")
	}

	extractor := exif.NewExtractor(log)

	// 5. Initialize use cases
	statsUC := usecase.NewStatsUseCase(tripRepo, locationRepo, photoRepo, statsCacheRepo, cfg.Cache.TripStatsTTL, log)
	tripUC := usecase.NewTripUseCase(tripRepo, locationRepo, photoRepo, statsUC, log)
	locationUC := usecase.NewLocationUseCase(locationRepo, photoRepo, tripRepo, statsUC, log)
	photoUC := usecase.NewPhotoUseCase(photoRepo, locationRepo, statsUC, log)
	journalUC := usecase.NewJournalUseCase(tripRepo, locationRepo, photoRepo, log)

	newWizard := func() *usecase.UploadWizard {
		return usecase.NewUploadWizard(tripRepo, locationRepo, photoRepo, extractor, streamRepo, cfg.Upload, log)
	}

	// 6. Initialize handlers
	tripHandler := handler.NewTripHandler(tripUC, log)
	locationHandler := handler.NewLocationHandler(locationUC, log)
	photoHandler := handler.NewPhotoHandler(photoUC, log)
	uploadHandler := handler.NewUploadHandler(newWizard, journalUC, statsUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 7. Start HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tripHandler,
		locationHandler,
		photoHandler,
		uploadHandler,
		statsHandler,
		health,
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 8. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
