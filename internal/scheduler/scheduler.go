// Package scheduler runs the engine's periodic background tasks.
package scheduler

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type Task func(ctx context.Context) error

// Every runs task immediately and then on every tick until ctx is done.
// Errors are logged and the schedule keeps going.
func Every(ctx context.Context, interval time.Duration, name string, task Task) {
	t := time.NewTicker(interval)
	defer t.Stop()

	// run immediately
	go func() {
		if err := task(ctx); err != nil {
			log.WithField("task", name).WithError(err).Warn("scheduled task failed")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := task(ctx); err != nil {
				log.WithField("task", name).WithError(err).Warn("scheduled task failed")
			}
		}
	}
}
