// Package http implements the local control surface of the sync layer.
//
// It exposes route wiring, request handlers, and middleware for the small
// REST API a host application can use to trigger a sync, inspect the head
// of the durable queue, and read the current connectivity and pending
// status. Cross-cutting concerns such as request tracing and access logging
// are handled here before requests are delegated to the sync engine.
package http
