// Package delivery defines the interface every inbound server implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter (HTTP server, worker).
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
