package engine_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-local-sync/internal/adapter"
	"github.com/MKhiriev/go-local-sync/internal/bus"
	"github.com/MKhiriev/go-local-sync/internal/config"
	"github.com/MKhiriev/go-local-sync/internal/engine"
	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/internal/mock"
	"github.com/MKhiriev/go-local-sync/models"
)

// scriptedMonitor replays a fixed sequence of connectivity samples and then
// holds the last value.
type scriptedMonitor struct {
	mu     sync.Mutex
	values []bool
	index  int
}

func newScriptedMonitor(values ...bool) *scriptedMonitor {
	return &scriptedMonitor{values: values}
}

func (m *scriptedMonitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	value := m.values[m.index]
	if m.index < len(m.values)-1 {
		m.index++
	}
	return value
}

// eventRecorder collects bus events for one signal behind a mutex so tests
// can assert on them after concurrent publishing settles.
type eventRecorder struct {
	mu     sync.Mutex
	events []bus.Event
}

func (r *eventRecorder) record(e bus.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) snapshot() []bus.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bus.Event(nil), r.events...)
}

func testWorkersConfig() config.Workers {
	return config.Workers{
		TickInterval:   20 * time.Millisecond,
		SyncInterval:   time.Hour,
		DebounceWindow: 10 * time.Millisecond,
	}
}

func queued(sequence int64, method, target string, addedAt time.Time, body string) models.QueuedRequest {
	r := models.QueuedRequest{
		Sequence: sequence,
		Target:   target,
		AddedAt:  addedAt,
		Options:  models.RequestOptions{Method: method},
	}
	if body != "" {
		r.Options.Body = json.RawMessage(body)
	}
	return r
}

func TestPushChanges_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, bus.New(),
		newScriptedMonitor(false), logger.Nop())
	defer e.Stop()

	published, err := e.PushChanges(context.Background())
	require.NoError(t, err)
	assert.False(t, published)
}

func TestPushChanges_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	queue.EXPECT().ListPending(gomock.Any()).Return(nil, nil)

	events := bus.New()
	recorder := &eventRecorder{}
	events.Subscribe(bus.SignalRequestsPublished, recorder.record)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, events,
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	published, err := e.PushChanges(context.Background())
	require.NoError(t, err)
	assert.False(t, published)
	assert.Empty(t, recorder.snapshot())
}

func TestPushChanges_PublishesCollatedGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pending := []models.QueuedRequest{
		queued(1, "PUT", "/v1/documents/a", base, `{"v":1}`),
		queued(2, "PUT", "/v1/documents/b", base.Add(time.Second), `{"v":2}`),
		queued(3, "PUT", "/v1/documents/a", base.Add(2*time.Second), `{"v":3}`),
	}
	queue.EXPECT().ListPending(gomock.Any()).Return(pending, nil)

	// the collated request for /a carries the fields of the latest write
	transport.EXPECT().
		Perform(gomock.Any(), "/v1/documents/a", models.RequestOptions{
			Method: "PUT",
			Body:   json.RawMessage(`{"v":3}`),
		}).
		Return(nil)
	transport.EXPECT().
		Perform(gomock.Any(), "/v1/documents/b", models.RequestOptions{
			Method: "PUT",
			Body:   json.RawMessage(`{"v":2}`),
		}).
		Return(nil)

	queue.EXPECT().Dequeue(gomock.Any(), int64(1)).Return(nil)
	queue.EXPECT().Dequeue(gomock.Any(), int64(3)).Return(nil)
	queue.EXPECT().Dequeue(gomock.Any(), int64(2)).Return(nil)

	events := bus.New()
	recorder := &eventRecorder{}
	events.Subscribe(bus.SignalRequestsPublished, recorder.record)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, events,
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	published, err := e.PushChanges(context.Background())
	require.NoError(t, err)
	assert.True(t, published)

	got := recorder.snapshot()
	require.Len(t, got, 1)
	require.Len(t, got[0].Groups, 2)
	assert.Equal(t, []int64{1, 3}, got[0].Groups[0].Subsumed)
	assert.Equal(t, []int64{2}, got[0].Groups[1].Subsumed)
}

func TestPushChanges_FailedGroupStaysQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pending := []models.QueuedRequest{
		queued(1, "PUT", "/v1/documents/a", base, `{"v":1}`),
		queued(2, "PUT", "/v1/documents/b", base.Add(time.Second), `{"v":2}`),
	}
	queue.EXPECT().ListPending(gomock.Any()).Return(pending, nil)

	transport.EXPECT().
		Perform(gomock.Any(), "/v1/documents/a", gomock.Any()).
		Return(adapter.ErrTransportFailure)
	transport.EXPECT().
		Perform(gomock.Any(), "/v1/documents/b", gomock.Any()).
		Return(nil)

	// only the delivered group is dequeued
	queue.EXPECT().Dequeue(gomock.Any(), int64(2)).Return(nil)

	events := bus.New()
	recorder := &eventRecorder{}
	events.Subscribe(bus.SignalRequestsPublished, recorder.record)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, events,
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	published, err := e.PushChanges(context.Background())
	require.NoError(t, err)
	assert.True(t, published)

	got := recorder.snapshot()
	require.Len(t, got, 1)
	require.Len(t, got[0].Groups, 1)
	assert.Equal(t, "/v1/documents/b", got[0].Groups[0].Request.Target)
}

func TestPushChanges_StoreFailureAbortsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	wantErr := errors.New("database is locked")
	queue.EXPECT().ListPending(gomock.Any()).Return(nil, wantErr)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, bus.New(),
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	_, err := e.PushChanges(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestPushChanges_BurstIsCoalesced(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pending := []models.QueuedRequest{
		queued(1, "PUT", "/v1/documents/a", base, `{"v":1}`),
	}

	// one pass serves the whole burst
	queue.EXPECT().ListPending(gomock.Any()).Return(pending, nil).Times(1)
	transport.EXPECT().Perform(gomock.Any(), "/v1/documents/a", gomock.Any()).Return(nil).Times(1)
	queue.EXPECT().Dequeue(gomock.Any(), int64(1)).Return(nil).Times(1)

	cfg := testWorkersConfig()
	cfg.DebounceWindow = 50 * time.Millisecond

	e := engine.NewSyncEngine(cfg, queue, transport, bus.New(),
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	const callers = 4
	var wg sync.WaitGroup
	results := make([]bool, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = e.PushChanges(context.Background())
		}()
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.True(t, results[i])
	}
}

func TestControlLoop_EdgeTriggeredConnectivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	queue.EXPECT().HasPending(gomock.Any()).Return(false, nil).AnyTimes()
	// the online transition triggers a push; the queue is empty
	queue.EXPECT().ListPending(gomock.Any()).Return(nil, nil).AnyTimes()

	events := bus.New()
	online := &eventRecorder{}
	offline := &eventRecorder{}
	events.Subscribe(bus.SignalWentOnline, online.record)
	events.Subscribe(bus.SignalWentOffline, offline.record)

	// steady online, one offline stretch, then online again: exactly one
	// transition each way
	monitor := newScriptedMonitor(true, true, false, false, true)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, events,
		monitor, logger.Nop())
	e.Start()
	defer e.Stop()

	require.Eventually(t, func() bool {
		return len(online.snapshot()) >= 1 && len(offline.snapshot()) >= 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Len(t, offline.snapshot(), 1)
	assert.Len(t, online.snapshot(), 1)
}

func TestControlLoop_PendingChangesIsLevelTriggered(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	queue.EXPECT().HasPending(gomock.Any()).Return(true, nil).AnyTimes()

	events := bus.New()
	recorder := &eventRecorder{}
	events.Subscribe(bus.SignalPendingChanges, recorder.record)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, events,
		newScriptedMonitor(true), logger.Nop())
	e.Start()
	defer e.Stop()

	// unlike the connectivity events, the pending status repeats every tick
	require.Eventually(t, func() bool {
		return len(recorder.snapshot()) >= 3
	}, time.Second, 10*time.Millisecond)

	for _, event := range recorder.snapshot() {
		assert.True(t, event.Pending)
	}
}

func TestSync_OfflineSkipsPushButRunsPullHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	queue.EXPECT().HasPending(gomock.Any()).Return(false, nil).AnyTimes()

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, bus.New(),
		newScriptedMonitor(false), logger.Nop())
	defer e.Stop()

	hookCalled := false
	e.SetPullHook(func(context.Context) error {
		hookCalled = true
		return nil
	})

	require.NoError(t, e.Sync(context.Background()))
	assert.True(t, hookCalled)
}

func TestSync_PropagatesPullHookError(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	queue.EXPECT().HasPending(gomock.Any()).Return(false, nil).AnyTimes()
	queue.EXPECT().ListPending(gomock.Any()).Return(nil, nil).AnyTimes()

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, bus.New(),
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	wantErr := errors.New("pull failed")
	e.SetPullHook(func(context.Context) error { return wantErr })

	err := e.Sync(context.Background())
	assert.ErrorIs(t, err, wantErr)
}

func TestSync_PushFailureStillRunsPullHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	storeErr := errors.New("queue scan failed")
	queue.EXPECT().HasPending(gomock.Any()).Return(true, nil).AnyTimes()
	queue.EXPECT().ListPending(gomock.Any()).Return(nil, storeErr).AnyTimes()

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, bus.New(),
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	hookCalled := false
	e.SetPullHook(func(context.Context) error {
		hookCalled = true
		return nil
	})

	err := e.Sync(context.Background())
	assert.ErrorIs(t, err, storeErr)
	assert.True(t, hookCalled)
}

func TestWentOnlineTriggersPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pending := []models.QueuedRequest{
		queued(1, "PUT", "/v1/documents/a", base, `{"v":1}`),
	}

	listed := make(chan struct{})
	queue.EXPECT().ListPending(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.QueuedRequest, error) {
			close(listed)
			return pending, nil
		})
	transport.EXPECT().Perform(gomock.Any(), "/v1/documents/a", gomock.Any()).Return(nil)
	queue.EXPECT().Dequeue(gomock.Any(), int64(1)).Return(nil)

	events := bus.New()
	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, events,
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	events.Publish(bus.Event{Signal: bus.SignalWentOnline})

	select {
	case <-listed:
	case <-time.After(time.Second):
		t.Fatal("reconnect did not trigger a publish pass")
	}
	// let the pass finish before gomock verifies expectations
	time.Sleep(50 * time.Millisecond)
}

func TestHasPendingChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	queue.EXPECT().HasPending(gomock.Any()).Return(true, nil)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, bus.New(),
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	pending, err := e.HasPendingChanges(context.Background())
	require.NoError(t, err)
	assert.True(t, pending)
}

func TestPeekNextRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	next := queued(7, "PUT", "/v1/documents/a", time.Now(), `{"v":1}`)
	queue.EXPECT().PeekNext(gomock.Any()).Return(next, nil)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, bus.New(),
		newScriptedMonitor(true), logger.Nop())
	defer e.Stop()

	got, err := e.PeekNextRequest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, next, got)
}

func TestSetBackgroundSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock.NewMockQueueRepository(ctrl)
	transport := mock.NewMockTransport(ctrl)

	queue.EXPECT().HasPending(gomock.Any()).Return(false, nil).AnyTimes()
	queue.EXPECT().ListPending(gomock.Any()).Return(nil, nil).MinTimes(1)

	e := engine.NewSyncEngine(testWorkersConfig(), queue, transport, bus.New(),
		newScriptedMonitor(true), logger.Nop())

	e.SetBackgroundSync(true, 25*time.Millisecond)
	time.Sleep(120 * time.Millisecond)
	e.SetBackgroundSync(false, 0)
	e.Stop()
}
