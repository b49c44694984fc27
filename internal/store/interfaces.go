// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the durable local store of the sync layer.
//
// It owns two SQLite-backed collections: application objects keyed by id
// (the local cache, source of truth for reads while offline) and the
// request queue of pending outbound mutations keyed by an auto-incrementing
// sequence number. Every object mutation is announced on the event bus so
// that observers can react without polling.
package store

import (
	"context"

	"github.com/MKhiriev/go-local-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ObjectRepository persists application objects in the local cache.
type ObjectRepository interface {
	// PutObject stamps obj with the current time, canonicalizes its payload
	// through a JSON round trip, persists it keyed by obj.ID (overwriting
	// any existing record) and publishes an object-changed event carrying
	// the final stored value. It returns the stored object once the write
	// is durable. Returns [ErrSerialization] (wrapped) if the payload is
	// not representable, or [ErrStorage] if persistence fails.
	PutObject(ctx context.Context, obj models.Object) (models.Object, error)

	// GetObject returns the object stored under id.
	// Returns [ErrObjectNotFound] if no such object exists.
	GetObject(ctx context.Context, id string) (models.Object, error)

	// RemoveObject publishes an object-changed event with a nil value for
	// id, then deletes the record. After it returns, GetObject(id) yields
	// [ErrObjectNotFound]. Removing an absent id is not an error.
	RemoveObject(ctx context.Context, id string) error
}

// QueueRepository persists the ordered queue of pending outbound requests.
type QueueRepository interface {
	// Enqueue persists a new queued request with a fresh sequence number
	// and the current timestamp, and returns the assigned sequence.
	Enqueue(ctx context.Context, target string, options models.RequestOptions) (int64, error)

	// PeekNext returns the pending request with the smallest AddedAt, ties
	// broken by smallest Sequence. Returns [ErrQueueEmpty] when the queue
	// holds no requests. The request is not consumed.
	PeekNext(ctx context.Context) (models.QueuedRequest, error)

	// Dequeue deletes the request with the given sequence. Deleting an
	// absent sequence is not an error, so a replay pass can dequeue
	// subsumed sequences without coordination.
	Dequeue(ctx context.Context, sequence int64) error

	// HasPending reports whether the queue is non-empty.
	HasPending(ctx context.Context) (bool, error)

	// ListPending returns every pending request ordered by AddedAt
	// ascending, ties broken by Sequence. This is the collation input.
	ListPending(ctx context.Context) ([]models.QueuedRequest, error)
}
