package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"tube_analytics/internal/domain"
)

// VideoPlatform is the subset of the YouTube client the views consume.
type VideoPlatform interface {
	ResolveChannel(ctx context.Context, input string) (*domain.Channel, error)
	GetVideoStats(ctx context.Context, videoID string) (*domain.Video, error)
	GetChannelVideos(ctx context.Context, channelID string, maxResults int) ([]domain.SearchResult, error)
	GetTrendingVideos(ctx context.Context, regionCode string, maxResults int) ([]domain.Video, error)
	Search(ctx context.Context, query string, typ domain.ResultType, maxResults int) ([]domain.SearchResult, error)
	SearchVideosWithStats(ctx context.Context, query string, maxResults int) ([]domain.Video, error)
}

type Publisher interface {
	Publish(ctx context.Context, snapshot *domain.TrendingSnapshot) error
	Close() error
}
