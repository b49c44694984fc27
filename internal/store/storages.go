package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-local-sync/internal/bus"
	"github.com/MKhiriev/go-local-sync/internal/config"
	"github.com/MKhiriev/go-local-sync/internal/logger"
)

// Storages groups the repositories of the durable local store into a single
// value that can be passed around the engine and handler layers.
type Storages struct {
	// Objects is the local cache of application objects.
	Objects ObjectRepository

	// Queue is the ordered queue of pending outbound requests.
	Queue QueueRepository
}

// NewStorages initialises the durable store using the supplied
// configuration, event bus and logger. It performs the following steps:
//  1. Opens an SQLite connection to the DSN in cfg.DB, creating the
//     database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to fresh object and queue
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, events *bus.Bus, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Objects: NewObjectRepository(db, events, logger),
		Queue:   NewQueueRepository(db, logger),
	}, nil
}
