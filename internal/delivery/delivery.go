// Package delivery defines the contract every transport entrypoint
// implements so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
