// Package scheduler runs the trend watcher on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tube_analytics/internal/domain"
)

// Watcher runs one trend watch pass.
type Watcher interface {
	Sync(ctx context.Context) (*domain.WatchStats, error)
}

// Run is the outcome of one pass.
type Run struct {
	StartedAt time.Time
	Stats     *domain.WatchStats
	Err       error
}

// Scheduler runs a Watcher immediately and then on every tick. Each pass gets
// its own deadline; a failed pass never stops the loop.
type Scheduler struct {
	watcher    Watcher
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger

	mu       sync.Mutex
	last     Run
	failures int
}

// NewScheduler creates a scheduler. A non-positive runTimeout bounds each pass
// by the interval instead.
func NewScheduler(watcher Watcher, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	if runTimeout <= 0 {
		runTimeout = interval
	}
	return &Scheduler{
		watcher:    watcher,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start blocks until ctx is done and returns its error.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "run_timeout", s.runTimeout)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

// LastRun returns the most recent pass and the number of failed passes in a
// row before and including it.
func (s *Scheduler) LastRun() (Run, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.failures
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	run := Run{StartedAt: time.Now()}
	run.Stats, run.Err = s.watcher.Sync(runCtx)

	s.mu.Lock()
	s.last = run
	if run.Err != nil {
		s.failures++
	} else {
		s.failures = 0
	}
	failures := s.failures
	s.mu.Unlock()

	switch {
	case run.Err != nil:
		s.logger.Error("trend watch failed", "consecutive_failures", failures, "error", run.Err)
	case run.Stats.Errors > 0:
		s.logger.Warn("trend watch finished with errors",
			"errors", run.Stats.Errors,
			"regions", run.Stats.Regions,
			"published", run.Stats.Published,
		)
	}
}
