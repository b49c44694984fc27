package engine

import (
	"context"
	"sync"
	"time"
)

// publishCall is one coalesced execution of the publish pass. Callers wait
// on done and then read the shared result.
type publishCall struct {
	done      chan struct{}
	published bool
	err       error
}

// publishFlight coalesces publish triggers into single executions.
//
// The first trigger opens a call and arms a trailing window; every further
// trigger that arrives while the call is open (waiting out the window or
// already running) joins it and observes the same result. The guard means
// no two publish passes ever overlap, which is the engine's only defense
// against redundant concurrent replays: manual sync, the periodic loop and
// the online-transition handler can all fire close together.
type publishFlight struct {
	window time.Duration
	run    func(ctx context.Context) (bool, error)

	mu      sync.Mutex
	current *publishCall
}

func newPublishFlight(window time.Duration, run func(ctx context.Context) (bool, error)) *publishFlight {
	return &publishFlight{window: window, run: run}
}

// Do triggers a publish pass and returns its result. If a pass is already
// open the caller joins it. The pass itself runs detached from any caller's
// context: a caller abandoning the wait does not cancel the replay for the
// others, it only stops waiting.
func (f *publishFlight) Do(ctx context.Context) (bool, error) {
	f.mu.Lock()
	call := f.current
	if call == nil {
		call = &publishCall{done: make(chan struct{})}
		f.current = call
		go f.execute(call)
	}
	f.mu.Unlock()

	select {
	case <-call.done:
		return call.published, call.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

func (f *publishFlight) execute(call *publishCall) {
	// trailing edge: let the burst of triggers that opened this call
	// settle before doing the actual work
	if f.window > 0 {
		time.Sleep(f.window)
	}

	call.published, call.err = f.run(context.Background())

	f.mu.Lock()
	f.current = nil
	f.mu.Unlock()

	close(call.done)
}
