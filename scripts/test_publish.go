//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type UploadCommittedEvent struct {
	TripID      string   `json:"trip_id"`
	LocationIDs []string `json:"location_ids"`
	PhotoIDs    []string `json:"photo_ids"`
	TripCreated bool     `json:"trip_created"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	tripID := flag.String("trip", "1", "Trip id to refresh")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := UploadCommittedEvent{
		TripID:      *tripID,
		LocationIDs: []string{uuid.NewString()},
		PhotoIDs:    []string{uuid.NewString(), uuid.NewString()},
		TripCreated: false,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:journal:uploads",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published upload event %s for trip %s\n", id, event.TripID)
}
