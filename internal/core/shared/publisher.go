// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shared

import (
	"context"
	"log/slog"
)

// Publisher ships drained domain events to an external sink.
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// LogPublisher writes each event as a structured log line.
//
// It is the sink used when no Redis stream is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a [LogPublisher].
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish implements [Publisher]. It never fails.
func (publisher *LogPublisher) Publish(ctx context.Context, events ...Event) error {
	for _, event := range events {
		publisher.logger.InfoContext(ctx, "domain_event",
			slog.String("event_id", event.EventID()),
			slog.String("event_type", event.EventType()),
			slog.String("aggregate_id", event.AggregateID()),
			slog.Time("occurred_on", event.OccurredOn()),
		)
	}
	return nil
}
