// Package delivery defines the contract every transport implementation
// (HTTP, workers, ...) must satisfy to be started by the application.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
