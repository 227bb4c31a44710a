// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, worker, ...). Serve
// blocks until the server stops; shutdown is driven by the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
