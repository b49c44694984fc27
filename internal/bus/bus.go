// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bus implements the typed publish/subscribe channel that decouples
// the durable store and the sync engine from their observers.
//
// The set of signals is fixed and enumerated (see [Signal]); subscribers are
// invoked synchronously, in subscription order, on the goroutine that calls
// [Bus.Publish]. Delivery order therefore matches publish order, which the
// sync engine relies on when reacting to connectivity transitions.
package bus

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-local-sync/internal/utils"
	"github.com/MKhiriev/go-local-sync/models"
)

// Signal names one of the events the sync layer can publish.
type Signal string

const (
	// SignalWentOnline fires once when connectivity returns after an
	// offline period. Steady online state produces no event.
	SignalWentOnline Signal = "went-online"

	// SignalWentOffline fires once when connectivity is lost.
	SignalWentOffline Signal = "went-offline"

	// SignalObjectChanged fires on every object put or removal. On removal
	// the event carries a nil object value.
	SignalObjectChanged Signal = "object-changed"

	// SignalRequestsPublished fires after a publish pass in which at least
	// one collated group was successfully replayed.
	SignalRequestsPublished Signal = "requests-published"

	// SignalPendingChanges fires on every control-loop tick and carries
	// whether the request queue is currently non-empty.
	SignalPendingChanges Signal = "pending-changes"
)

// Event is the value delivered to subscribers. Signal determines which of
// the payload fields are populated.
type Event struct {
	// Signal identifies the event kind.
	Signal Signal

	// At is the time the event was published.
	At time.Time

	// ObjectID is set for [SignalObjectChanged].
	ObjectID string

	// Object is the stored value for [SignalObjectChanged], or nil when
	// the object was removed.
	Object *models.Object

	// Groups lists the successfully replayed groups for
	// [SignalRequestsPublished].
	Groups []models.CollatedGroup

	// Pending is set for [SignalPendingChanges].
	Pending bool
}

// Handler receives published events for one signal.
type Handler func(Event)

type subscription struct {
	id      string
	handler Handler
}

// Bus is a synchronous in-process publish/subscribe dispatcher.
// The zero value is not usable; construct with [New].
type Bus struct {
	ids *utils.UUIDGenerator

	mu   sync.RWMutex
	subs map[Signal][]subscription
}

// New returns an empty Bus ready for use.
func New() *Bus {
	return &Bus{
		ids:  utils.NewUUIDGenerator(),
		subs: make(map[Signal][]subscription),
	}
}

// Subscribe registers handler for the given signal and returns a
// subscription id that can be passed to [Bus.Unsubscribe]. Handlers for the
// same signal are invoked in subscription order.
func (b *Bus) Subscribe(signal Signal, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.ids.Generate()
	b.subs[signal] = append(b.subs[signal], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes the subscription with the given id. Unknown ids are
// ignored so that tearing down an observer twice is harmless.
func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for signal, subs := range b.subs {
		for i, sub := range subs {
			if sub.id == id {
				b.subs[signal] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers event to every subscriber of event.Signal, synchronously
// and in subscription order. If event.At is zero it is stamped with the
// current time.
func (b *Bus) Publish(event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.subs[event.Signal]))
	copy(subs, b.subs[event.Signal])
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(event)
	}
}
