// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run polls once immediately, then on every interval tick, emitting each
// result on out. No overlap. No retries inside a cycle.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	interval := p.cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if !emit(ctx, out, p.PollOnce()) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !emit(ctx, out, p.PollOnce()) {
				return
			}
		}
	}
}

func emit(ctx context.Context, out chan<- PollResult, res PollResult) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- res:
		return true
	}
}
