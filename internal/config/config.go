// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-local-sync runtime. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the durable local store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings for the local HTTP control surface.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings for the outbound transport to the remote
	// service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the sync engine's background loops.
	Workers Workers `envPrefix:"WORKERS_"`

	// Logging holds settings for the daemon's log output.
	Logging Logging `envPrefix:"LOGGING_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the durable local store.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs
// the object cache and the request queue.
type DB struct {
	// DSN is the SQLite file path (or DSN) used to open the local
	// database (e.g. "sync.db" or "file:sync.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings for the local HTTP control surface through which
// an embedding application can trigger syncs and inspect the queue.
type Server struct {
	// HTTPAddress is the TCP address on which the control surface
	// listens, in "host:port" format (e.g. "127.0.0.1:8090").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Adapter holds settings for the outbound transport used to replay queued
// requests against the remote service.
type Adapter struct {
	// RemoteAddress is the base URL of the remote service that queued
	// requests are replayed against (e.g. "https://api.example.com").
	// Env: ADAPTER_REMOTE_ADDRESS
	RemoteAddress string `env:"REMOTE_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single replay
	// request before the transport cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds timing configuration for the sync engine's control loop,
// background sync ticker, and publish debounce.
type Workers struct {
	// TickInterval is the period of the engine control loop that samples
	// connectivity and republishes the pending-changes status
	// (e.g. "200ms").
	// Env: WORKERS_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// SyncInterval defines how often the background sync ticker invokes a
	// full sync when background sync is enabled (e.g. "5s").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// DebounceWindow is the trailing window within which repeated push
	// triggers collapse into a single publish pass (e.g. "200ms").
	// Env: WORKERS_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`
}

// Logging holds settings for the daemon's log output.
type Logging struct {
	// File is the path of the log file the daemon appends to. When empty,
	// logs go to stdout. Embedded deployments set it so sync activity
	// survives process restarts.
	// Env: LOGGING_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the runtime
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
