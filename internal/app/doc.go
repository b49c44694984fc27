// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the sync daemon runtime.
//
// It wires configuration, storage, the remote transport, the sync engine,
// and the local control surface into a single process lifecycle.
package app
