package services

import (
	"context"
	"time"
)

// DefaultQueryTimeout bounds a store round trip when a service has no timeout configured.
const DefaultQueryTimeout = 15 * time.Second

// BcryptCost is the work factor for stored password hashes.
const BcryptCost = 12

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultQueryTimeout
	}
	return context.WithTimeout(ctx, d)
}

// Outcome is a service answer that may report success=false without being an error,
// e.g. a failed security-question check.
type Outcome struct {
	Success bool
	Message string
	Data    any
}
