// Package delivery defines the serving surfaces of the application.
package delivery

import "context"

// Delivery is a transport the application serves on, such as an HTTP server.
// Serve blocks until the transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
