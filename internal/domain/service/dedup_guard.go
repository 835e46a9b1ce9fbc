package service

import (
	"context"
	"time"
)

// DedupGuard claims a dedup key for a window so concurrent scheduler runs
// do not both emit the same reminder.
type DedupGuard interface {
	// Claim returns true when the key was free and is now held for ttl.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release drops a claim whose work failed so the next run can retry it.
	Release(ctx context.Context, key string) error
}
