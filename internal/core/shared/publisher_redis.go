// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shared

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/uibutton/internal/platform/constants"
)

// RedisPublisher appends events to a Redis stream, one entry per event.
//
// Each entry has the fields event_type, aggregate_id, and payload (the event
// as JSON), so consumers can filter without decoding the payload.
type RedisPublisher struct {
	client redis.Cmdable
	stream string
}

// NewRedisPublisher creates a Redis-backed [Publisher] writing to stream.
func NewRedisPublisher(client redis.Cmdable, stream string) *RedisPublisher {
	return &RedisPublisher{client: client, stream: stream}
}

/*
Publish implements [Publisher].

All events are written in a single pipeline. The first failing entry aborts
the call; entries already queued in the pipeline may still have been written.
*/
func (publisher *RedisPublisher) Publish(ctx context.Context, events ...Event) error {
	if len(events) == 0 {
		return nil
	}

	pipe := publisher.client.Pipeline()
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("redis_event_encode_failed: %w", err)
		}

		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: publisher.stream,
			MaxLen: constants.EventStreamMaxLen,
			Approx: true,
			Values: map[string]any{
				"event_type":   event.EventType(),
				"aggregate_id": event.AggregateID(),
				"payload":      string(payload),
			},
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis_event_publish_failed: %w", err)
	}

	return nil
}
