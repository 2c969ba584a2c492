// Package delivery defines the serving surfaces of the daemon.
package delivery

import "context"

// Delivery is a long-running serving surface (an HTTP listener).
type Delivery interface {
	Serve(ctx context.Context) error
}
