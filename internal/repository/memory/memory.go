package memory

import (
	"context"
	"sync"
	"time"

	"github.com/travel-journal-service/internal/config"
	"github.com/travel-journal-service/internal/domain"
	"go.uber.org/zap"
)

// Store is the in-process backend: id-keyed tables for trips, locations
// and photos. It replaces what used to be module-level mutable state
// with a value constructed once per process (or per test) and injected
// into the repositories, so a real database can be substituted without
// touching call sites.
type Store struct {
	mu        sync.RWMutex
	trips     map[string]domain.Trip
	locations map[string]domain.Location
	photos    map[string]domain.Photo

	delay  time.Duration
	logger *zap.Logger
}

func NewStore(cfg *config.StorageConfig, logger *zap.Logger) *Store {
	s := &Store{
		trips:     make(map[string]domain.Trip),
		locations: make(map[string]domain.Location),
		photos:    make(map[string]domain.Photo),
		delay:     cfg.SimulatedDelay,
		logger:    logger,
	}

	if cfg.Seed {
		s.seed()
		logger.Info("Memory store seeded with sample data",
			zap.Int("trips", len(s.trips)),
			zap.Int("locations", len(s.locations)),
			zap.Int("photos", len(s.photos)),
		)
	}

	return s
}

// simulate waits for the configured artificial latency, honoring
// context cancellation. Zero delay returns immediately.
func (s *Store) simulate(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) Health(ctx context.Context) error {
	return ctx.Err()
}
