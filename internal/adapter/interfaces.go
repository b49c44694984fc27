// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport collaborator used by the sync
// engine to replay queued requests against the remote service.
//
// The primary abstraction is [Transport], which decouples the engine from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPTransport]) built on resty.
//
// Transport failures are mapped to [ErrTransportFailure] so that the engine
// can use [errors.Is] to tell a failed replay apart from programming errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-local-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport performs one replay attempt for a collated request against the
// remote service. Implementations are responsible for serialisation and for
// mapping protocol-level failures to [ErrTransportFailure].
//
// The engine imposes no retry or backoff policy: a failed attempt simply
// leaves the request queued for the next publish pass.
type Transport interface {
	// Perform issues the request described by target and options. A nil
	// return means the remote service accepted the mutation and the
	// originals may be dequeued. In-flight calls are not cancelled by a
	// later offline transition; ctx carries only the caller's deadline.
	Perform(ctx context.Context, target string, options models.RequestOptions) error
}
