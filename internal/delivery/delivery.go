// Package delivery defines the interface for the transport layer.
package delivery

import "context"

// Delivery is a transport serving the application, started by main and
// stopped through the fx lifecycle.
type Delivery interface {
	// Serve blocks serving requests until the transport is shut down.
	Serve(ctx context.Context) error
}
