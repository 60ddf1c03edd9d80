// Package delivery defines the transports that expose the use cases.
package delivery

import "context"

// Delivery is a long-running transport started by the process entrypoint.
// Serve blocks until the transport is shut down through its fx stop hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
