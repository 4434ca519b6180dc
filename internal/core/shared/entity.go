// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shared

import (
	"time"

	"github.com/taibuivan/uibutton/pkg/uuid"
)

// Clock returns the current time. Entities read time only through their clock.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// Entity is the identity and bookkeeping part every aggregate embeds.
//
// # Concurrency
//
// Entity is not safe for concurrent use. Callers serialize access to a single
// aggregate instance.
type Entity struct {
	id        string
	createdAt time.Time
	updatedAt time.Time
	clock     Clock
	events    EventQueue
}

// NewEntity assigns id (a fresh UUIDv7 when empty) and stamps both timestamps.
func NewEntity(id string, clock Clock) Entity {
	if clock == nil {
		clock = SystemClock
	}
	if id == "" {
		id = uuid.New()
	}

	now := clock()
	return Entity{id: id, createdAt: now, updatedAt: now, clock: clock}
}

// RestoreEntity rebuilds the bookkeeping of a persisted aggregate.
func RestoreEntity(id string, createdAt, updatedAt time.Time, clock Clock) Entity {
	if clock == nil {
		clock = SystemClock
	}
	return Entity{id: id, createdAt: createdAt, updatedAt: updatedAt, clock: clock}
}

// ID returns the aggregate identity.
func (e *Entity) ID() string { return e.id }

// CreatedAt returns the creation timestamp.
func (e *Entity) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns the timestamp of the last mutation.
func (e *Entity) UpdatedAt() time.Time { return e.updatedAt }

// SameIdentityAs reports whether both entities share an id, regardless of attributes.
func (e *Entity) SameIdentityAs(other *Entity) bool {
	return other != nil && e.id == other.id
}

// Now reads the entity clock.
func (e *Entity) Now() time.Time {
	return e.clock()
}

// Touch marks the entity as modified.
func (e *Entity) Touch() {
	e.updatedAt = e.clock()
}

// Record buffers a domain event until the next [Entity.DomainEvents] call.
func (e *Entity) Record(event Event) {
	e.events.Record(event)
}

// DomainEvents drains and returns the buffered events.
func (e *Entity) DomainEvents() []Event {
	return e.events.Drain()
}

// PendingEvents reports how many events are buffered.
func (e *Entity) PendingEvents() int {
	return e.events.Len()
}
