// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shared

import (
	"time"

	"github.com/taibuivan/uibutton/pkg/uuid"
)

// Event is an immutable record of a significant state change on an aggregate.
type Event interface {
	EventID() string
	EventType() string
	AggregateID() string
	OccurredOn() time.Time
}

// EventHeader carries the fields every event shares. Concrete events embed it.
type EventHeader struct {
	ID        string    `json:"event_id"`
	Kind      string    `json:"event_type"`
	Aggregate string    `json:"aggregate_id"`
	At        time.Time `json:"occurred_on"`
}

// NewEventHeader stamps a header with a fresh id.
func NewEventHeader(kind, aggregateID string, at time.Time) EventHeader {
	return EventHeader{ID: uuid.New(), Kind: kind, Aggregate: aggregateID, At: at}
}

func (h EventHeader) EventID() string       { return h.ID }
func (h EventHeader) EventType() string     { return h.Kind }
func (h EventHeader) AggregateID() string   { return h.Aggregate }
func (h EventHeader) OccurredOn() time.Time { return h.At }

// EventQueue is an owned, append-only buffer of events.
//
// Drain hands the whole buffer to the caller and starts a new one, so each
// event is delivered at most once.
type EventQueue struct {
	events []Event
}

// Record appends e.
func (q *EventQueue) Record(e Event) {
	q.events = append(q.events, e)
}

// Drain pops every buffered event. The result is never nil.
func (q *EventQueue) Drain() []Event {
	drained := q.events
	q.events = nil
	if drained == nil {
		return []Event{}
	}
	return drained
}

// Len reports the number of buffered events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
