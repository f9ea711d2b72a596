package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tube_analytics/internal/config"
	"tube_analytics/internal/domain"
)

const maxConcurrentRegions = 4

// TrendWatch fetches the trending chart of every configured region and
// publishes one snapshot per region.
type TrendWatch struct {
	platform  VideoPlatform
	publisher Publisher
	logger    *slog.Logger
	config    config.WatchConfig
	now       func() time.Time
}

func NewTrendWatch(
	platform VideoPlatform,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.WatchConfig,
) *TrendWatch {
	return &TrendWatch{
		platform:  platform,
		publisher: publisher,
		logger:    logger.With("component", "trendwatch"),
		config:    cfg,
		now:       time.Now,
	}
}

// Sync runs one pass over all regions. A failing region is counted in
// WatchStats.Errors; Sync itself fails only when every region failed.
func (s *TrendWatch) Sync(ctx context.Context) (*domain.WatchStats, error) {
	startTime := time.Now()
	s.logger.Info("starting trend watch",
		"regions", s.config.Regions,
		"max_results", s.config.MaxResults,
	)

	stats := &domain.WatchStats{Regions: len(s.config.Regions)}
	var (
		mu       sync.Mutex
		failed   int
		firstErr error
	)
	record := func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRegions)

	for _, region := range s.config.Regions {
		g.Go(func() error {
			snapshot, err := s.fetch(gctx, region)
			if err != nil {
				s.logger.Warn("failed to fetch trending", "region", region, "error", err)
				record(func() {
					stats.Errors++
					failed++
					if firstErr == nil {
						firstErr = err
					}
				})
				return nil
			}
			record(func() { stats.Fetched += len(snapshot.Videos) })

			if s.publisher == nil {
				return nil
			}
			if err := s.publisher.Publish(gctx, snapshot); err != nil {
				s.logger.Warn("failed to publish snapshot", "region", region, "error", err)
				record(func() { stats.Errors++ })
				return nil
			}
			record(func() { stats.Published++ })
			return nil
		})
	}
	_ = g.Wait()

	stats.Duration = time.Since(startTime)

	s.logger.Info("trend watch completed",
		"fetched", stats.Fetched,
		"published", stats.Published,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	if stats.Regions > 0 && failed == stats.Regions {
		return stats, fmt.Errorf("all regions failed: %w", firstErr)
	}
	return stats, nil
}

func (s *TrendWatch) fetch(ctx context.Context, region string) (*domain.TrendingSnapshot, error) {
	videos, err := s.platform.GetTrendingVideos(ctx, region, s.config.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("get trending %s: %w", region, err)
	}
	return &domain.TrendingSnapshot{
		Region:    region,
		FetchedAt: s.now().UTC(),
		Videos:    videos,
	}, nil
}
