package repository

import (
	"context"

	"github.com/travel-journal-service/internal/domain"
)

// StreamRepository publishes and consumes journal events over Redis
// Streams.
type StreamRepository interface {
	// PublishToStream publishes a message to a stream
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// ConsumeStream reads messages from a stream via a consumer group
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup creates the consumer group for a stream
	CreateConsumerGroup(ctx context.Context, stream, group string) error
}
