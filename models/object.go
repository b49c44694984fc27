package models

import (
	"encoding/json"
	"time"
)

// Origin identifies where a stored object came from.
type Origin string

const (
	// OriginAPI marks objects that were received from the remote service.
	OriginAPI Origin = "api"

	// OriginClient marks objects created or modified locally on this device.
	OriginClient Origin = "client"
)

// Object is an application-level durable record kept in the local cache.
// It is the source of truth for read access while the client is offline.
type Object struct {
	// ID is the unique key of the object within the local store.
	ID string `json:"id"`

	// Type is a free-form category tag assigned by the application
	// (e.g. "note", "task"). The sync layer does not interpret it.
	Type string `json:"type"`

	// Payload is the serialized application value. It is canonicalized
	// through a JSON round trip when the object is stored, so it never
	// aliases memory owned by the caller.
	Payload json.RawMessage `json:"payload"`

	// AddedAt is the time the object was last written to the local store.
	AddedAt time.Time `json:"added_at"`

	// Origin records whether the value came from the remote service or
	// from a local mutation.
	Origin Origin `json:"origin"`
}
