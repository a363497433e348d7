package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/domain/repository"
	"github.com/travel-journal-service/internal/usecase"
	"github.com/travel-journal-service/internal/worker"
	"go.uber.org/zap"
)

// StatsRefreshWorker consumes upload-committed events and refreshes the
// persisted and cached statistics of the affected trips. The API also
// refreshes stats inline, so this worker only has to win eventually:
// it repairs stats for uploads committed while the cache was down.
type StatsRefreshWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	statsUC      *usecase.StatsUseCase
	consumerName string
}

func NewStatsRefreshWorker(
	streamRepo repository.StreamRepository,
	statsUC *usecase.StatsUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *StatsRefreshWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &StatsRefreshWorker{
		BaseWorker:   worker.NewBaseWorker("journal-stats-refresh", consumerGroup, logger),
		streamRepo:   streamRepo,
		statsUC:      statsUC,
		consumerName: consumerName,
	}
}

func (w *StatsRefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting StatsRefreshWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamJournalUploads, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamJournalUploads, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *StatsRefreshWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.UploadCommittedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse upload event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// ack the broken message so it does not stay pending forever
		_ = w.streamRepo.AckMessage(ctx, domain.StreamJournalUploads, w.ConsumerGroup(), msg.ID)
		return
	}

	if _, err := w.statsUC.RefreshTripStats(ctx, event.TripID); err != nil {
		logger.Error("Failed to refresh trip stats",
			zap.String("trip_id", event.TripID),
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// leave unacked for redelivery
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamJournalUploads, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message", zap.String("message_id", msg.ID), zap.Error(err))
		return
	}

	logger.Info("Trip stats refreshed",
		zap.String("trip_id", event.TripID),
		zap.Int("photos", len(event.PhotoIDs)),
		zap.Bool("trip_created", event.TripCreated))
}
