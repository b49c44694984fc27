package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage is returned (wrapped) whenever the underlying database is
	// unavailable or a query fails. The store never retries on its own; the
	// sync engine decides whether the operation is attempted again.
	ErrStorage = errors.New("durable store unavailable")

	// ErrSerialization is returned by PutObject when the object payload does
	// not survive a canonical JSON round trip and therefore cannot be stored
	// losslessly.
	ErrSerialization = errors.New("payload is not serializable")

	// ErrObjectNotFound is returned when a read targets an object id that
	// does not exist in the local cache (or was removed).
	ErrObjectNotFound = errors.New("object was not found")

	// ErrQueueEmpty is returned by PeekNext when no requests are pending.
	ErrQueueEmpty = errors.New("request queue is empty")
)
