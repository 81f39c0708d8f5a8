// Package delivery defines the interface every server-ish component
// (HTTP API, worker) implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running serving component.
type Delivery interface {
	// Serve blocks until the component stops or fails.
	Serve(ctx context.Context) error
}
