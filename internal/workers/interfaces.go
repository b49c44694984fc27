// Package workers provides abstractions for managing and running the
// daemon's background workers.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way; SyncWorker drives the sync
// engine and HTTPServerWorker serves the local control surface.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally; SyncWorker and HTTPServerWorker both
// return after launching their loops.
type Worker interface {
	Run()
}
