package repo

import (
	"context"
	"time"
)

// withTimeout bounds a single store call when a query timeout is set.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
