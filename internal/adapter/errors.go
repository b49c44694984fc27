package adapter

import "errors"

// ErrTransportFailure is returned (wrapped) when a replay attempt does not
// reach the remote service or the service rejects it. The affected group
// stays queued; callers match with [errors.Is].
var ErrTransportFailure = errors.New("transport request failed")
