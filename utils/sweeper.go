package utils

import (
	"context"
	"time"
)

// StartSweeper launches a background goroutine running fn on a fixed interval
// until ctx is cancelled. It is best-effort; fn handles its own logging.
func StartSweeper(ctx context.Context, interval time.Duration, fn func()) {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}
