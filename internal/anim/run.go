package anim

import (
	"context"
	"time"
)

// Run ticks d every interval until the animation finishes or ctx is done.
// It returns nil when the animation ran to completion.
func Run(ctx context.Context, d *Driver, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !d.Tick() {
				return nil
			}
		}
	}
}
