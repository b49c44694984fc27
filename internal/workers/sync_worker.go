package workers

import (
	"time"

	"github.com/MKhiriev/go-local-sync/internal/engine"
)

// SyncWorker starts the sync engine's control loop and enables periodic
// background synchronization. Run returns immediately; the engine owns the
// goroutines.
type SyncWorker struct {
	engine   engine.SyncEngine
	interval time.Duration
}

func NewSyncWorker(engine engine.SyncEngine, interval time.Duration) *SyncWorker {
	return &SyncWorker{engine: engine, interval: interval}
}

func (w *SyncWorker) Run() {
	w.engine.Start()
	w.engine.SetBackgroundSync(true, w.interval)
}
