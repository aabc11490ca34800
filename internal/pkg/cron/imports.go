package cron

import (
	"context"
	"time"
)

// StagePurger removes staged import uploads older than a cutoff.
type StagePurger interface {
	PurgeStale(ctx context.Context, olderThan time.Duration) (int, error)
}

// ImportJobs holds housekeeping for staged employee imports.
type ImportJobs struct {
	purger StagePurger
	ttl    time.Duration
}

func NewImportJobs(purger StagePurger, ttl time.Duration) *ImportJobs {
	return &ImportJobs{purger: purger, ttl: ttl}
}

// RegisterJobs checks for abandoned uploads at a quarter of the stage TTL.
func (j *ImportJobs) RegisterJobs(scheduler *Scheduler) {
	interval := j.ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	scheduler.AddJob("purge_stale_imports", interval, j.PurgeStaleImports)
}

func (j *ImportJobs) PurgeStaleImports(ctx context.Context) error {
	_, err := j.purger.PurgeStale(ctx, j.ttl)
	return err
}
