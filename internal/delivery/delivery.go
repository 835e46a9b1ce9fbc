// Package delivery holds the process entry surfaces: the API server, the fan-out worker and the broker consumer.
package delivery

import "context"

// Delivery is a long-running surface started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
