package models

import (
	"encoding/json"
	"time"
)

// DefaultMethod is assumed for queued requests that do not specify one.
const DefaultMethod = "GET"

// RequestOptions describes how a queued mutation should be replayed
// against the remote service.
type RequestOptions struct {
	// Method is the HTTP method of the request. Empty means [DefaultMethod].
	Method string `json:"method,omitempty"`

	// Headers are sent verbatim with the replayed request.
	Headers map[string]string `json:"headers,omitempty"`

	// Body is the serialized request body, if any.
	Body json.RawMessage `json:"body,omitempty"`
}

// QueuedRequest is a pending outbound mutation awaiting successful
// delivery to the remote service.
type QueuedRequest struct {
	// Sequence is assigned by the store at insertion time and is strictly
	// increasing. It is zero until the request has been persisted.
	Sequence int64 `json:"sequence"`

	// Target is the URL (or URL path, relative to the transport base URL)
	// the request is replayed against.
	Target string `json:"target"`

	// Options carries the method, headers and body of the request.
	Options RequestOptions `json:"options"`

	// AddedAt is the time the request was enqueued.
	AddedAt time.Time `json:"added_at"`
}

// Identity returns the logical identity used to coalesce queued requests:
// requests with the same method and target supersede one another.
func (r QueuedRequest) Identity() string {
	method := r.Options.Method
	if method == "" {
		method = DefaultMethod
	}
	return method + " " + r.Target
}

// CollatedGroup is the result of merging every queued request that shares
// one logical identity into a single effective request. It is derived on
// every collation pass and never persisted.
type CollatedGroup struct {
	// Request is the effective request to replay. Its fields come from
	// the latest request of the identity, except AddedAt which keeps the
	// earliest enqueue time so that replay order reflects first intent.
	Request QueuedRequest `json:"request"`

	// Subsumed lists the sequence numbers of every original request the
	// group replaces, in enqueue order. All of them are dequeued once the
	// effective request has been delivered.
	Subsumed []int64 `json:"subsumed"`
}
