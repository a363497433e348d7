package domain

// Stream names (consumed by the stats refresh worker)
const (
	StreamJournalUploads = "stream:journal:uploads"
)

// UploadCommittedEvent is published after a wizard commit finishes
// successfully. The worker uses it to refresh the cached trip stats.
type UploadCommittedEvent struct {
	TripID      string   `json:"trip_id"`
	LocationIDs []string `json:"location_ids"`
	PhotoIDs    []string `json:"photo_ids"`
	TripCreated bool     `json:"trip_created"`
}

// StreamMessage is a raw message read from a stream together with its
// broker-assigned id, kept so consumers can ack it after processing.
// Data is the JSON payload published under the "data" field.
type StreamMessage struct {
	ID   string
	Data string
}
