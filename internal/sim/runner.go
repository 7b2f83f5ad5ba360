package sim

import (
	"context"
	"fmt"
	"time"
)

// Runner drives a Driver in real time. The ticker it owns is released on
// every exit path: completion, context cancellation, or error.
type Runner struct {
	driver   *Driver
	interval time.Duration
}

func NewRunner(d *Driver, interval time.Duration) *Runner {
	return &Runner{driver: d, interval: interval}
}

// Run starts the driver and ticks it at the runner's interval until ground
// contact or ctx is cancelled. A cancelled run leaves the driver stopped via
// Reset so no later callback can mutate a disposed run.
func (r *Runner) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", r.interval)
	}
	if !r.driver.Start() {
		return fmt.Errorf("driver already running")
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.driver.Reset()
			return ctx.Err()
		case <-ticker.C:
			r.driver.Tick()
			if r.driver.Phase() != Running {
				return nil
			}
		}
	}
}
