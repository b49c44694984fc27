// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Runner defines the minimal lifecycle contract for runnable applications.
type Runner interface {
	// Run starts the application and blocks until exit.
	Run() error
}
