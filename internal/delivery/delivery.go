// Package delivery holds the entry points that trigger dispatch ticks.
package delivery

import "context"

// Delivery is a long-running trigger started by the application root.
type Delivery interface {
	Serve(ctx context.Context) error
}
