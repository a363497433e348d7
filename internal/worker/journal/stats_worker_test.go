package journal_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-journal-service/internal/config"
	"github.com/travel-journal-service/internal/domain"
	"github.com/travel-journal-service/internal/repository/memory"
	"github.com/travel-journal-service/internal/usecase"
	"github.com/travel-journal-service/internal/worker/journal"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func newStatsUseCase(t *testing.T) (*usecase.StatsUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(&config.StorageConfig{Driver: "memory", Seed: true}, zap.NewNop())
	statsUC := usecase.NewStatsUseCase(
		memory.NewTripRepository(store),
		memory.NewLocationRepository(store),
		memory.NewPhotoRepository(store),
		nil,
		time.Hour,
		zap.NewNop(),
	)
	return statsUC, store
}

// TestStatsRefreshWorker_Name tests the worker name
func TestStatsRefreshWorker_Name(t *testing.T) {
	mockStream := &MockStreamRepository{}
	statsUC, _ := newStatsUseCase(t)

	worker := journal.NewStatsRefreshWorker(mockStream, statsUC, "test-group", zap.NewNop())

	assert.Equal(t, "journal-stats-refresh", worker.Name())
}

// TestStatsRefreshWorker_Stop tests graceful stop
func TestStatsRefreshWorker_Stop(t *testing.T) {
	mockStream := &MockStreamRepository{}
	statsUC, _ := newStatsUseCase(t)

	worker := journal.NewStatsRefreshWorker(mockStream, statsUC, "test-group", zap.NewNop())

	messages := make(chan domain.StreamMessage)
	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamJournalUploads, "test-group").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamJournalUploads, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(messages), nil)

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, worker.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop in time")
	}
	assert.True(t, worker.IsStopped())
}

// TestStatsRefreshWorker_ProcessesEvent tests that a consumed event
// refreshes the trip stats and acks the message.
func TestStatsRefreshWorker_ProcessesEvent(t *testing.T) {
	mockStream := &MockStreamRepository{}
	statsUC, store := newStatsUseCase(t)

	// drop a seeded rating so the refresh has something to change
	ctx := context.Background()
	_, err := memory.NewLocationRepository(store).Update(ctx, &domain.Location{ID: "2", Rating: 2})
	require.NoError(t, err)

	worker := journal.NewStatsRefreshWorker(mockStream, statsUC, "test-group", zap.NewNop())

	messages := make(chan domain.StreamMessage, 1)
	event := domain.UploadCommittedEvent{TripID: "1", PhotoIDs: []string{"1"}}
	data, err := json.Marshal(event)
	require.NoError(t, err)
	messages <- domain.StreamMessage{ID: "1-0", Data: string(data)}

	acked := make(chan struct{})
	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamJournalUploads, "test-group").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamJournalUploads, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(messages), nil)
	mockStream.On("AckMessage", mock.Anything, domain.StreamJournalUploads, "test-group", "1-0").
		Run(func(args mock.Arguments) { close(acked) }).
		Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	select {
	case <-acked:
	case <-time.After(time.Second):
		t.Fatal("event was not acked in time")
	}

	require.NoError(t, worker.Stop())
	<-done

	// 5, 2, 5 average to 4.0
	trip, err := memory.NewTripRepository(store).GetByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, trip.Rating)
	assert.Equal(t, 4.0, *trip.Rating)
	mockStream.AssertExpectations(t)
}
