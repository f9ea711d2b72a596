package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube_analytics/internal/domain"
)

type watcherFunc func(ctx context.Context) (*domain.WatchStats, error)

func (f watcherFunc) Sync(ctx context.Context) (*domain.WatchStats, error) {
	return f(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	var runs atomic.Int32
	ticked := make(chan struct{}, 8)

	w := watcherFunc(func(ctx context.Context) (*domain.WatchStats, error) {
		runs.Add(1)
		select {
		case ticked <- struct{}{}:
		default:
		}
		return &domain.WatchStats{}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewScheduler(w, 10*time.Millisecond, time.Second, testLogger()).Start(ctx)
	}()

	for range 2 {
		select {
		case <-ticked:
		case <-time.After(2 * time.Second):
			t.Fatal("watcher was not run")
		}
	}
	cancel()

	require.ErrorIs(t, <-done, context.Canceled)
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestScheduler_RunTimeoutAppliesPerRun(t *testing.T) {
	deadlines := make(chan time.Duration, 1)

	w := watcherFunc(func(ctx context.Context) (*domain.WatchStats, error) {
		dl, ok := ctx.Deadline()
		if ok {
			select {
			case deadlines <- time.Until(dl):
			default:
			}
		}
		return nil, errors.New("upstream down")
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewScheduler(w, time.Hour, 50*time.Millisecond, testLogger()).Start(ctx)
	}()

	select {
	case d := <-deadlines:
		assert.LessOrEqual(t, d, 50*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher was not run")
	}
	cancel()

	require.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_TracksConsecutiveFailures(t *testing.T) {
	var calls int
	w := watcherFunc(func(ctx context.Context) (*domain.WatchStats, error) {
		calls++
		if calls <= 2 {
			return nil, errors.New("upstream down")
		}
		return &domain.WatchStats{Regions: 3, Published: 3}, nil
	})

	s := NewScheduler(w, time.Hour, time.Second, testLogger())

	s.runOnce(context.Background())
	s.runOnce(context.Background())
	run, failures := s.LastRun()
	assert.Error(t, run.Err)
	assert.Equal(t, 2, failures)

	s.runOnce(context.Background())
	run, failures = s.LastRun()
	require.NoError(t, run.Err)
	assert.Equal(t, 3, run.Stats.Published)
	assert.Zero(t, failures)
	assert.False(t, run.StartedAt.IsZero())
}

func TestScheduler_ZeroRunTimeoutUsesInterval(t *testing.T) {
	var remaining time.Duration
	w := watcherFunc(func(ctx context.Context) (*domain.WatchStats, error) {
		dl, ok := ctx.Deadline()
		require.True(t, ok)
		remaining = time.Until(dl)
		return &domain.WatchStats{}, nil
	})

	NewScheduler(w, time.Minute, 0, testLogger()).runOnce(context.Background())

	assert.Greater(t, remaining, 30*time.Second)
	assert.LessOrEqual(t, remaining, time.Minute)
}
