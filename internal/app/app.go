package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-local-sync/internal/adapter"
	"github.com/MKhiriev/go-local-sync/internal/bus"
	"github.com/MKhiriev/go-local-sync/internal/config"
	"github.com/MKhiriev/go-local-sync/internal/engine"
	handler "github.com/MKhiriev/go-local-sync/internal/handler/http"
	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/internal/netmon"
	"github.com/MKhiriev/go-local-sync/internal/store"
	"github.com/MKhiriev/go-local-sync/internal/workers"
)

type App struct {
	engine  engine.SyncEngine
	workers *workers.Workers
	control *workers.HTTPServerWorker

	logger *logger.Logger
}

// NewApp wires the full sync runtime: storage, remote transport,
// connectivity monitor, sync engine, and the local control surface.
func NewApp(cfg *config.SyncConfig, log *logger.Logger) (*App, error) {
	events := bus.New()

	storages, err := store.NewStorages(cfg.Storage, events, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	monitor := netmon.NewInterfaceMonitor()
	syncEngine := engine.NewSyncEngine(cfg.Workers, storages.Queue, transport, events, monitor, log)

	router := handler.NewHandler(syncEngine, storages.Objects, monitor, log).Init()
	control := workers.NewHTTPServerWorker(cfg.Server.HTTPAddress, router, log)

	return &App{
		engine: syncEngine,
		workers: workers.NewWorkers(
			workers.NewSyncWorker(syncEngine, cfg.Workers.SyncInterval),
			control,
		),
		control: control,
		logger:  log,
	}, nil
}

// Run starts the background workers and blocks until the process receives
// SIGINT or SIGTERM, then shuts the runtime down in reverse order.
func (a *App) Run() error {
	a.workers.Run()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	a.logger.Info().
		Str("func", "App.Run").
		Str("signal", sig.String()).
		Msg("shutting down")

	if err := a.control.Shutdown(); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("control server shutdown failed")
	}
	a.engine.Stop()

	return nil
}
