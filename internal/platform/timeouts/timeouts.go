// Package timeouts defines shared timeout constants for the HTTP server.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps the time spent writing one response. Pages are rendered in
// memory first, so this only covers slow clients.
const Write = 15 * time.Second

// Idle limits how long keep-alive connections stay open between requests.
const Idle = 60 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
