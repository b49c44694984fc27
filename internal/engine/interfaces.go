// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package engine implements the synchronization engine: the orchestrator
// that collates the durable request queue, replays it against the remote
// service when connectivity allows, and drives the periodic control loop
// that watches the queue and the connectivity signal.
//
// The engine holds no persistent state of its own beyond the last-observed
// connectivity value and its timer handles; the durable store owns all
// data, and every publish pass recomputes the collation from the current
// queue contents.
package engine

import (
	"context"
	"time"

	"github.com/MKhiriev/go-local-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// PullHook is an optional externally supplied callback invoked at the end
// of every Sync call, used to refresh read-only data from the remote
// service. Its failures propagate to the Sync caller unchanged.
type PullHook func(ctx context.Context) error

// SyncEngine is the control surface an embedding application drives.
type SyncEngine interface {
	// Start launches the periodic control loop. It is idempotent; Sync
	// calls it implicitly on first use.
	Start()

	// Stop cancels the control loop and any background sync ticker and
	// waits for both to exit. Safe to call when not running.
	Stop()

	// Sync ensures the control loop is running, pushes pending changes if
	// the host is online (an offline push is a logged no-op, not an
	// error), then invokes the registered pull hook if any.
	Sync(ctx context.Context) error

	// PushChanges replays pending queued requests and reports whether at
	// least one collated group was published. Rapid repeated calls
	// collapse into a single publish pass and share its result.
	PushChanges(ctx context.Context) (bool, error)

	// SetBackgroundSync idempotently installs (or cancels, when enabled
	// is false) a ticker that invokes Sync every interval. A non-positive
	// interval falls back to the configured default.
	SetBackgroundSync(enabled bool, interval time.Duration)

	// SetPullHook registers the pull collaborator invoked by Sync.
	SetPullHook(hook PullHook)

	// HasPendingChanges reports whether the request queue is non-empty.
	HasPendingChanges(ctx context.Context) (bool, error)

	// PeekNextRequest returns the earliest pending request without
	// consuming it. Returns store.ErrQueueEmpty when nothing is queued.
	PeekNextRequest(ctx context.Context) (models.QueuedRequest, error)
}
