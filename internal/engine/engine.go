package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-local-sync/internal/adapter"
	"github.com/MKhiriev/go-local-sync/internal/bus"
	"github.com/MKhiriev/go-local-sync/internal/collate"
	"github.com/MKhiriev/go-local-sync/internal/config"
	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/internal/netmon"
	"github.com/MKhiriev/go-local-sync/internal/store"
	"github.com/MKhiriev/go-local-sync/models"
)

type syncEngine struct {
	queue     store.QueueRepository
	collator  collate.Collator
	transport adapter.Transport
	events    *bus.Bus
	monitor   netmon.Monitor
	logger    *logger.Logger

	tickInterval time.Duration
	syncInterval time.Duration
	flight       *publishFlight

	mu         sync.Mutex
	lastOnline bool
	loopCancel context.CancelFunc
	loopWG     sync.WaitGroup
	hook       PullHook

	bgMu     sync.Mutex
	bgCancel context.CancelFunc
	bgWG     sync.WaitGroup
}

// NewSyncEngine constructs a SyncEngine wired to the given collaborators.
// The engine subscribes to the went-online signal immediately so that a
// reconnection drains the queue without waiting for the next scheduled
// sync. The control loop stays idle until Start (or the first Sync).
//
// Connectivity is assumed online at construction; the first control-loop
// sample corrects the assumption if needed.
func NewSyncEngine(workersCfg config.Workers, queue store.QueueRepository, transport adapter.Transport, events *bus.Bus, monitor netmon.Monitor, logger *logger.Logger) SyncEngine {
	e := &syncEngine{
		queue:        queue,
		collator:     collate.NewCollator(),
		transport:    transport,
		events:       events,
		monitor:      monitor,
		logger:       logger,
		tickInterval: workersCfg.TickInterval,
		syncInterval: workersCfg.SyncInterval,
		lastOnline:   true,
	}
	if e.tickInterval <= 0 {
		e.tickInterval = config.DefaultTickInterval
	}
	if e.syncInterval <= 0 {
		e.syncInterval = config.DefaultSyncInterval
	}

	window := workersCfg.DebounceWindow
	if window <= 0 {
		window = config.DefaultDebounceWindow
	}
	e.flight = newPublishFlight(window, e.publishPass)

	events.Subscribe(bus.SignalWentOnline, func(bus.Event) {
		// detached: the bus fans out synchronously on the control-loop
		// goroutine, which must not block on a publish pass
		go func() {
			if _, err := e.PushChanges(context.Background()); err != nil {
				e.logger.Err(err).
					Str("func", "syncEngine.onWentOnline").
					Msg("push after reconnect failed")
			}
		}()
	})

	return e
}

// Start implements SyncEngine. It launches the control loop goroutine; a
// second call while the loop is running is a no-op.
func (e *syncEngine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loopCancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	e.loopCancel = cancel
	e.loopWG.Add(1)

	go func() {
		defer e.loopWG.Done()
		t := time.NewTicker(e.tickInterval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				e.tick(loopCtx)
			}
		}
	}()
}

// Stop implements SyncEngine.
func (e *syncEngine) Stop() {
	e.SetBackgroundSync(false, 0)

	e.mu.Lock()
	cancel := e.loopCancel
	e.loopCancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.loopWG.Wait()
}

// tick is one pass of the control loop: republish the pending-changes
// status (level-triggered, every tick) and sample connectivity, publishing
// a transition event only when the value changed since the last sample.
func (e *syncEngine) tick(ctx context.Context) {
	pending, err := e.queue.HasPending(ctx)
	if err != nil {
		e.logger.Err(err).
			Str("func", "syncEngine.tick").
			Msg("failed to check pending changes")
	} else {
		e.events.Publish(bus.Event{Signal: bus.SignalPendingChanges, Pending: pending})
	}

	online := e.monitor.Online()

	e.mu.Lock()
	changed := online != e.lastOnline
	e.lastOnline = online
	e.mu.Unlock()

	if !changed {
		return
	}

	signal := bus.SignalWentOffline
	if online {
		signal = bus.SignalWentOnline
	}
	e.logger.Info().
		Str("func", "syncEngine.tick").
		Bool("online", online).
		Msg("connectivity transition")
	e.events.Publish(bus.Event{Signal: signal, At: time.Now()})
}

// Sync implements SyncEngine. The pull hook runs at the end of every call,
// even when the push step failed, so read-side refreshes are never starved
// by a broken outbound path.
func (e *syncEngine) Sync(ctx context.Context) error {
	e.Start()

	var pushErr error
	if !e.monitor.Online() {
		// expected when offline: queued work simply waits for reconnect
		e.logger.Debug().
			Str("func", "syncEngine.Sync").
			Msg("offline, skipping push")
	} else {
		_, pushErr = e.PushChanges(ctx)
	}

	e.mu.Lock()
	hook := e.hook
	e.mu.Unlock()

	if hook != nil {
		if err := hook(ctx); err != nil {
			return errors.Join(pushErr, err)
		}
	}
	return pushErr
}

// PushChanges implements SyncEngine. The actual publish pass is debounced:
// all triggers within the trailing window share one execution and its
// result, so no two replay passes ever run concurrently.
func (e *syncEngine) PushChanges(ctx context.Context) (bool, error) {
	return e.flight.Do(ctx)
}

// publishPass is the single-flight body: collate the queue and replay each
// group earliest-first. Per-group transport failures are isolated; the
// failing group stays queued and the pass continues. Store read failures
// abort the pass and propagate.
func (e *syncEngine) publishPass(ctx context.Context) (bool, error) {
	if !e.monitor.Online() {
		return false, nil
	}

	pending, err := e.queue.ListPending(ctx)
	if err != nil {
		return false, err
	}
	if len(pending) == 0 {
		return false, nil
	}

	groups, err := e.collator.Collate(ctx, pending)
	if err != nil {
		return false, err
	}

	published := make([]models.CollatedGroup, 0, len(groups))
	for _, group := range groups {
		err := e.transport.Perform(ctx, group.Request.Target, group.Request.Options)
		if err != nil {
			e.logger.Warn().
				Err(err).
				Str("func", "syncEngine.publishPass").
				Str("target", group.Request.Target).
				Ints64("subsumed", group.Subsumed).
				Msg("replay failed, group stays queued")
			continue
		}

		for _, sequence := range group.Subsumed {
			if err := e.queue.Dequeue(ctx, sequence); err != nil {
				// the request was delivered; a leftover queue entry is
				// re-sent next pass, which the remote must tolerate
				e.logger.Err(err).
					Str("func", "syncEngine.publishPass").
					Int64("sequence", sequence).
					Msg("failed to dequeue published request")
			}
		}
		published = append(published, group)
	}

	if len(published) > 0 {
		e.events.Publish(bus.Event{Signal: bus.SignalRequestsPublished, Groups: published})
	}

	return len(published) > 0, nil
}

// SetBackgroundSync implements SyncEngine. It stops any previously running
// ticker, then, when enabled, launches a goroutine that calls Sync every
// interval until cancelled.
func (e *syncEngine) SetBackgroundSync(enabled bool, interval time.Duration) {
	e.bgMu.Lock()
	cancel := e.bgCancel
	e.bgCancel = nil
	e.bgMu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.bgWG.Wait()

	if !enabled {
		return
	}

	if interval <= 0 {
		interval = e.syncInterval
	}

	e.bgMu.Lock()
	bgCtx, bgCancel := context.WithCancel(context.Background())
	e.bgCancel = bgCancel
	e.bgWG.Add(1)
	e.bgMu.Unlock()

	go func() {
		defer e.bgWG.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-bgCtx.Done():
				return
			case <-t.C:
				if err := e.Sync(bgCtx); err != nil {
					e.logger.Err(err).
						Str("func", "syncEngine.SetBackgroundSync").
						Msg("background sync failed")
				}
			}
		}
	}()
}

// SetPullHook implements SyncEngine.
func (e *syncEngine) SetPullHook(hook PullHook) {
	e.mu.Lock()
	e.hook = hook
	e.mu.Unlock()
}

// HasPendingChanges implements SyncEngine.
func (e *syncEngine) HasPendingChanges(ctx context.Context) (bool, error) {
	return e.queue.HasPending(ctx)
}

// PeekNextRequest implements SyncEngine.
func (e *syncEngine) PeekNextRequest(ctx context.Context) (models.QueuedRequest, error) {
	return e.queue.PeekNext(ctx)
}
