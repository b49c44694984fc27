package http

import (
	"github.com/MKhiriev/go-local-sync/internal/engine"
	"github.com/MKhiriev/go-local-sync/internal/logger"
	"github.com/MKhiriev/go-local-sync/internal/netmon"
	"github.com/MKhiriev/go-local-sync/internal/store"
)

type Handler struct {
	engine  engine.SyncEngine
	objects store.ObjectRepository
	monitor netmon.Monitor

	logger *logger.Logger
}

func NewHandler(engine engine.SyncEngine, objects store.ObjectRepository, monitor netmon.Monitor, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		engine:  engine,
		objects: objects,
		monitor: monitor,
		logger:  logger,
	}
}
