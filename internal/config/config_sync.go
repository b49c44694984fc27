package config

import (
	"fmt"
	"time"
)

// Default timings applied by [GetSyncConfig] when the corresponding worker
// settings are left unset.
const (
	// DefaultTickInterval is the control-loop period used when
	// WORKERS_TICK_INTERVAL is not configured.
	DefaultTickInterval = 200 * time.Millisecond

	// DefaultSyncInterval is the background sync period used when
	// WORKERS_SYNC_INTERVAL is not configured.
	DefaultSyncInterval = 5 * time.Second

	// DefaultDebounceWindow is the publish debounce window used when
	// WORKERS_DEBOUNCE_WINDOW is not configured.
	DefaultDebounceWindow = 200 * time.Millisecond
)

// SyncConfig is the configuration view consumed by the sync runtime,
// assembled from [StructuredConfig].
type SyncConfig struct {
	// Storage contains local database settings.
	Storage Storage
	// Server contains the control surface listen address.
	Server Server
	// Adapter contains the outbound transport address and timeout.
	Adapter Adapter
	// Workers contains engine timing settings.
	Workers Workers
	// Logging contains the daemon log output settings.
	Logging Logging
}

// GetSyncConfig builds and validates the sync-runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the sync runtime, applies the default worker timings for
// unset values, and validates the resulting [SyncConfig].
func GetSyncConfig() (*SyncConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	syncCfg := &SyncConfig{
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
		Logging: cfg.Logging,
	}
	syncCfg.applyDefaults()

	return syncCfg, syncCfg.validate()
}

func (cfg *SyncConfig) applyDefaults() {
	if cfg.Workers.TickInterval <= 0 {
		cfg.Workers.TickInterval = DefaultTickInterval
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.DebounceWindow <= 0 {
		cfg.Workers.DebounceWindow = DefaultDebounceWindow
	}
}
