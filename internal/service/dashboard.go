package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"tube_analytics/internal/config"
	"tube_analytics/internal/domain"
	"tube_analytics/internal/latest"
	"tube_analytics/internal/scoring"
	"tube_analytics/internal/stats"
)

var (
	// ErrEmptyInput is returned for blank channel, video or keyword input.
	ErrEmptyInput = errors.New("empty input")
	// ErrSuperseded is returned when a newer request of the same view started
	// before this one finished. Its result was discarded.
	ErrSuperseded = errors.New("superseded by a newer request")
	// ErrCompetitorLimit is returned when the comparison is already full.
	ErrCompetitorLimit = fmt.Errorf("at most %d channels can be compared", stats.MaxCompetitors)
)

// Dashboard holds the snapshot state of every panel. Each panel keeps only the
// result of its newest request; a response arriving after a newer request
// started is dropped.
type Dashboard struct {
	platform VideoPlatform
	logger   *slog.Logger
	config   config.DashboardConfig

	channel  view[ChannelReport]
	video    view[VideoReport]
	trending view[TrendingReport]
	search   view[SearchReport]
	keyword  view[KeywordReport]

	mu          sync.Mutex
	competitors []domain.Channel
}

func NewDashboard(platform VideoPlatform, logger *slog.Logger, cfg config.DashboardConfig) *Dashboard {
	return &Dashboard{
		platform: platform,
		logger:   logger.With("component", "dashboard"),
		config:   cfg,
	}
}

type view[T any] struct {
	guard latest.Guard

	mu    sync.RWMutex
	state *T
}

func (v *view[T]) snapshot() *T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// run executes load as the newest request of v and stores its result if no
// newer request started meanwhile.
func run[T any](ctx context.Context, v *view[T], load func(ctx context.Context) (*T, error)) (*T, error) {
	ctx, ticket := v.guard.Begin(ctx)
	defer v.guard.Done(ticket)

	res, err := load(ctx)
	if v.guard.Current() != ticket {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	committed := v.guard.Commit(ticket, func() {
		v.mu.Lock()
		v.state = res
		v.mu.Unlock()
	})
	if !committed {
		return nil, ErrSuperseded
	}
	return res, nil
}

// alert turns a platform failure into the user-visible Alert. A failure caused
// by the request's own cancellation is returned as is and not logged.
func (d *Dashboard) alert(ctx context.Context, err error, notFound, failed string, attrs ...any) error {
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		return err
	}
	if IsNotFound(err) {
		d.logger.Info(notFound, append(attrs, "error", err)...)
		return &Alert{Message: notFound, Err: err}
	}
	d.logger.Error(failed, append(attrs, "error", err)...)
	return &Alert{Message: failed, Err: err}
}

// ChannelDisplay is the formatted headline counts of a channel.
type ChannelDisplay struct {
	Subscribers string `json:"subscribers"`
	Views       string `json:"views"`
	Videos      string `json:"videos"`
}

type ChannelReport struct {
	Channel     domain.Channel        `json:"channel"`
	Display     ChannelDisplay        `json:"display"`
	Videos      []domain.SearchResult `json:"videos"`
	Performance float64               `json:"performanceScore"`
	Growth      stats.Growth          `json:"growth"`
	Health      []stats.Metric        `json:"health"`
	Strategy    []stats.Metric        `json:"strategy"`
}

// AnalyzeChannel loads a channel by URL, id or handle together with its latest uploads.
func (d *Dashboard) AnalyzeChannel(ctx context.Context, input string) (*ChannelReport, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	return run(ctx, &d.channel, func(ctx context.Context) (*ChannelReport, error) {
		channel, err := d.platform.ResolveChannel(ctx, input)
		if err != nil {
			return nil, d.alert(ctx, err, "channel not found",
				"failed to load channel data, make sure the channel ID or URL is valid",
				"input", input)
		}

		videos, err := d.platform.GetChannelVideos(ctx, channel.ID, d.config.ChannelVideos)
		if err != nil {
			d.logger.Warn("failed to load channel videos", "channel_id", channel.ID, "error", err)
			videos = []domain.SearchResult{}
		}

		return &ChannelReport{
			Channel: *channel,
			Display: ChannelDisplay{
				Subscribers: stats.FormatCount(channel.SubscriberCount),
				Views:       stats.FormatCount(channel.ViewCount),
				Videos:      stats.FormatCount(channel.VideoCount),
			},
			Videos:      videos,
			Performance: stats.ChannelPerformanceScore(*channel),
			Growth:      stats.PredictGrowth(*channel),
			Health:      stats.ChannelHealth(*channel),
			Strategy:    stats.ContentStrategy(*channel),
		}, nil
	})
}

// VideoDisplay is the formatted headline values of a video.
type VideoDisplay struct {
	Views          string `json:"views"`
	Likes          string `json:"likes"`
	Comments       string `json:"comments"`
	Duration       string `json:"duration"`
	EngagementRate string `json:"engagementRate"`
}

type VideoReport struct {
	Video      domain.Video     `json:"video"`
	Display    VideoDisplay     `json:"display"`
	Engagement stats.Engagement `json:"engagement"`
}

func newVideoDisplay(v domain.Video) VideoDisplay {
	return VideoDisplay{
		Views:          stats.FormatCount(v.ViewCount),
		Likes:          stats.FormatCount(v.LikeCount),
		Comments:       stats.FormatCount(v.CommentCount),
		Duration:       stats.FormatDuration(v.Duration),
		EngagementRate: stats.EngagementRate(v.LikeCount, v.CommentCount, v.ViewCount),
	}
}

// AnalyzeVideo loads a video by URL or id.
func (d *Dashboard) AnalyzeVideo(ctx context.Context, input string) (*VideoReport, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	videoID := input
	if ref := stats.ExtractID(input); ref.Type == domain.ResultVideo {
		videoID = ref.ID
	}

	return run(ctx, &d.video, func(ctx context.Context) (*VideoReport, error) {
		video, err := d.platform.GetVideoStats(ctx, videoID)
		if err != nil {
			return nil, d.alert(ctx, err, "video not found",
				"failed to load video data, make sure the video ID or URL is valid",
				"video_id", videoID)
		}

		return &VideoReport{
			Video:      *video,
			Display:    newVideoDisplay(*video),
			Engagement: stats.EngagementBreakdown(*video),
		}, nil
	})
}

type TrendingVideo struct {
	Video   domain.Video `json:"video"`
	Display VideoDisplay `json:"display"`
}

type TrendingReport struct {
	Region string          `json:"region"`
	SortBy stats.SortKey   `json:"sortBy"`
	Videos []TrendingVideo `json:"videos"`
}

// LoadTrending fetches the trending chart of a region, sorted by key.
func (d *Dashboard) LoadTrending(ctx context.Context, region string, key stats.SortKey) (*TrendingReport, error) {
	if region == "" {
		region = d.config.Region
	}

	return run(ctx, &d.trending, func(ctx context.Context) (*TrendingReport, error) {
		videos, err := d.platform.GetTrendingVideos(ctx, region, d.config.TrendingResults)
		if err != nil {
			return nil, d.alert(ctx, err, "no trending videos found",
				"failed to load trending videos", "region", region)
		}
		return newTrendingReport(region, key, videos), nil
	})
}

// SortTrending re-orders the current trending snapshot without a request.
// It returns nil when nothing was loaded yet.
func (d *Dashboard) SortTrending(key stats.SortKey) *TrendingReport {
	var sorted *TrendingReport
	d.trending.guard.Commit(d.trending.guard.Current(), func() {
		d.trending.mu.Lock()
		defer d.trending.mu.Unlock()

		cur := d.trending.state
		if cur == nil {
			return
		}
		videos := make([]domain.Video, 0, len(cur.Videos))
		for _, v := range cur.Videos {
			videos = append(videos, v.Video)
		}
		sorted = newTrendingReport(cur.Region, key, videos)
		d.trending.state = sorted
	})
	return sorted
}

func newTrendingReport(region string, key stats.SortKey, videos []domain.Video) *TrendingReport {
	sorted := stats.SortVideos(videos, key)
	report := &TrendingReport{
		Region: region,
		SortBy: key,
		Videos: make([]TrendingVideo, 0, len(sorted)),
	}
	for _, v := range sorted {
		report.Videos = append(report.Videos, TrendingVideo{Video: v, Display: newVideoDisplay(v)})
	}
	return report
}

type SearchReport struct {
	Query       string                `json:"query"`
	Type        domain.ResultType     `json:"type"`
	Results     []domain.SearchResult `json:"results"`
	Suggestions []string              `json:"suggestions"`
}

// Search runs a keyword search for videos or channels.
func (d *Dashboard) Search(ctx context.Context, query string, typ domain.ResultType) (*SearchReport, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyInput
	}
	if !typ.Valid() {
		typ = domain.ResultVideo
	}

	return run(ctx, &d.search, func(ctx context.Context) (*SearchReport, error) {
		results, err := d.platform.Search(ctx, query, typ, d.config.SearchResults)
		if err != nil {
			return nil, d.alert(ctx, err, "no results found",
				"search failed, please try again", "query", query)
		}
		return &SearchReport{
			Query:       query,
			Type:        typ,
			Results:     results,
			Suggestions: scoring.RelatedSuggestions(query),
		}, nil
	})
}

type KeywordReport struct {
	Main       domain.KeywordMetric   `json:"main"`
	Difficulty scoring.Difficulty     `json:"difficulty"`
	Related    []domain.KeywordMetric `json:"related"`
}

// ExploreKeyword measures a keyword and its variations concurrently. The main
// keyword must succeed; variations that fail are left out.
func (d *Dashboard) ExploreKeyword(ctx context.Context, keyword string) (*KeywordReport, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyInput
	}

	return run(ctx, &d.keyword, func(ctx context.Context) (*KeywordReport, error) {
		variations := scoring.ExplorerVariations(keyword)
		related := make([]*domain.KeywordMetric, len(variations))
		var main domain.KeywordMetric

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			videos, err := d.platform.SearchVideosWithStats(gctx, keyword, scoring.Keyword.SampleSize)
			if err != nil {
				return err
			}
			main = scoring.KeywordMetrics(keyword, videos)
			return nil
		})
		for i, v := range variations {
			g.Go(func() error {
				videos, err := d.platform.SearchVideosWithStats(gctx, v, scoring.Keyword.SampleSize)
				if err != nil {
					d.logger.Warn("skipping keyword variation", "keyword", v, "error", err)
					return nil
				}
				m := scoring.KeywordMetrics(v, videos)
				related[i] = &m
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, d.alert(ctx, err, "keyword not found",
				"failed to analyse keyword, please try again", "keyword", keyword)
		}

		report := &KeywordReport{
			Main:       main,
			Difficulty: scoring.DifficultyLabel(main.Difficulty),
			Related:    make([]domain.KeywordMetric, 0, len(related)),
		}
		for _, m := range related {
			if m != nil {
				report.Related = append(report.Related, *m)
			}
		}
		return report, nil
	})
}

type CompetitorReport struct {
	Channels []domain.Channel        `json:"channels"`
	Bars     []stats.CompetitorBar   `json:"bars"`
	Radar    []stats.CompetitorRadar `json:"radar"`
}

// AddCompetitor resolves a channel and appends it to the comparison.
func (d *Dashboard) AddCompetitor(ctx context.Context, input string) (*CompetitorReport, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}
	if d.competitorCount() >= stats.MaxCompetitors {
		return nil, &Alert{Message: ErrCompetitorLimit.Error(), Err: ErrCompetitorLimit}
	}

	channel, err := d.platform.ResolveChannel(ctx, input)
	if err != nil {
		return nil, d.alert(ctx, err, "channel not found", "failed to load channel data", "input", input)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.competitors) >= stats.MaxCompetitors {
		return nil, &Alert{Message: ErrCompetitorLimit.Error(), Err: ErrCompetitorLimit}
	}
	d.competitors = append(d.competitors, *channel)
	return d.competitorReportLocked(), nil
}

// RemoveCompetitor drops the channel at index i.
func (d *Dashboard) RemoveCompetitor(i int) (*CompetitorReport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i < 0 || i >= len(d.competitors) {
		return nil, fmt.Errorf("competitor index %d out of range", i)
	}
	d.competitors = append(d.competitors[:i], d.competitors[i+1:]...)
	return d.competitorReportLocked(), nil
}

func (d *Dashboard) Competitors() *CompetitorReport {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.competitorReportLocked()
}

func (d *Dashboard) competitorCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.competitors)
}

func (d *Dashboard) competitorReportLocked() *CompetitorReport {
	channels := append([]domain.Channel{}, d.competitors...)
	return &CompetitorReport{
		Channels: channels,
		Bars:     stats.CompareBars(channels),
		Radar:    stats.CompareRadar(channels),
	}
}

// Channel, Video, Trending, SearchResults and Keyword return the current
// snapshot of a panel, or nil before its first successful request.
func (d *Dashboard) Channel() *ChannelReport      { return d.channel.snapshot() }
func (d *Dashboard) Video() *VideoReport          { return d.video.snapshot() }
func (d *Dashboard) Trending() *TrendingReport    { return d.trending.snapshot() }
func (d *Dashboard) SearchResults() *SearchReport { return d.search.snapshot() }
func (d *Dashboard) Keyword() *KeywordReport      { return d.keyword.snapshot() }
