// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Currently a no-op placeholder; the sync-runtime view performs the real
// validation in [SyncConfig.validate] after defaults have been applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *SyncConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RemoteAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.TickInterval <= 0 || cfg.Workers.SyncInterval <= 0 || cfg.Workers.DebounceWindow <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
