package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"tube_analytics/internal/domain"
	"tube_analytics/internal/stats"
)

const (
	partFull    = "snippet,statistics,contentDetails"
	partSnippet = "snippet"

	DefaultRegion        = "ID"
	DefaultTrendingLimit = 20
	DefaultSearchLimit   = 10
	DefaultChannelVideos = 10

	// maxBatchIDs is the videos.list limit for a comma separated id parameter.
	maxBatchIDs = 50
)

// GetChannelStats looks a channel up by its UC... id.
func (c *Client) GetChannelStats(ctx context.Context, channelID string) (*domain.Channel, error) {
	return c.lookupChannel(ctx, "id", channelID)
}

// GetChannelByHandle looks a channel up by its @handle.
func (c *Client) GetChannelByHandle(ctx context.Context, handle string) (*domain.Channel, error) {
	if !strings.HasPrefix(handle, "@") {
		handle = "@" + handle
	}
	return c.lookupChannel(ctx, "forHandle", handle)
}

// ResolveChannel accepts a channel URL, a UC... id or an @handle. Input that
// matches no known pattern is used as a channel id verbatim.
func (c *Client) ResolveChannel(ctx context.Context, input string) (*domain.Channel, error) {
	input = strings.TrimSpace(input)
	ref := stats.ExtractID(input)

	switch {
	case ref.Type == domain.ResultChannel && strings.HasPrefix(ref.ID, "UC"):
		return c.GetChannelStats(ctx, ref.ID)
	case ref.Type == domain.ResultChannel:
		// Legacy /c/<name> custom URLs are not handles. Looking them up as one is
		// a guess that misses channels whose handle differs from the custom name.
		return c.GetChannelByHandle(ctx, ref.ID)
	case strings.HasPrefix(input, "@"):
		return c.GetChannelByHandle(ctx, input)
	default:
		return c.GetChannelStats(ctx, input)
	}
}

func (c *Client) lookupChannel(ctx context.Context, key, value string) (*domain.Channel, error) {
	params := url.Values{}
	params.Set("part", partFull)
	params.Set(key, value)

	items, err := c.list(ctx, "channels", params)
	if err != nil {
		return nil, fmt.Errorf("get channel %s: %w", value, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("get channel %s: %w", value, ErrNotFound)
	}

	var item ChannelItem
	if err := json.Unmarshal(items[0], &item); err != nil {
		return nil, fmt.Errorf("decode channel %s: %w", value, ErrMalformedResponse)
	}
	channel, err := NormalizeChannel(item)
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

// GetVideoStats looks a single video up by id.
func (c *Client) GetVideoStats(ctx context.Context, videoID string) (*domain.Video, error) {
	videos, err := c.videosByID(ctx, []string{videoID})
	if err != nil {
		return nil, fmt.Errorf("get video %s: %w", videoID, err)
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("get video %s: %w", videoID, ErrNotFound)
	}
	return &videos[0], nil
}

// GetChannelVideos returns the newest uploads of a channel.
func (c *Client) GetChannelVideos(ctx context.Context, channelID string, maxResults int) ([]domain.SearchResult, error) {
	if maxResults <= 0 {
		maxResults = DefaultChannelVideos
	}

	params := url.Values{}
	params.Set("part", partSnippet)
	params.Set("channelId", channelID)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "date")
	params.Set("type", string(domain.ResultVideo))

	items, err := c.list(ctx, "search", params)
	if err != nil {
		return nil, fmt.Errorf("get channel videos %s: %w", channelID, err)
	}
	return c.transformSearch(items, domain.ResultVideo), nil
}

// GetTrendingVideos returns the mostPopular chart of a region.
func (c *Client) GetTrendingVideos(ctx context.Context, regionCode string, maxResults int) ([]domain.Video, error) {
	if regionCode == "" {
		regionCode = DefaultRegion
	}
	if maxResults <= 0 {
		maxResults = DefaultTrendingLimit
	}

	params := url.Values{}
	params.Set("part", partFull)
	params.Set("chart", "mostPopular")
	params.Set("regionCode", regionCode)
	params.Set("maxResults", strconv.Itoa(maxResults))

	items, err := c.list(ctx, "videos", params)
	if err != nil {
		return nil, fmt.Errorf("get trending %s: %w", regionCode, err)
	}
	return c.transformVideos(items), nil
}

// Search runs a keyword search restricted to one result type.
func (c *Client) Search(ctx context.Context, query string, typ domain.ResultType, maxResults int) ([]domain.SearchResult, error) {
	if !typ.Valid() {
		typ = domain.ResultVideo
	}
	if maxResults <= 0 {
		maxResults = DefaultSearchLimit
	}

	params := url.Values{}
	params.Set("part", partSnippet)
	params.Set("q", query)
	params.Set("type", string(typ))
	params.Set("maxResults", strconv.Itoa(maxResults))

	items, err := c.list(ctx, "search", params)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return c.transformSearch(items, typ), nil
}

// SearchVideosWithStats searches videos and then fetches their statistics in
// one videos.list batch.
func (c *Client) SearchVideosWithStats(ctx context.Context, query string, maxResults int) ([]domain.Video, error) {
	if maxResults <= 0 || maxResults > maxBatchIDs {
		maxResults = maxBatchIDs
	}

	results, err := c.Search(ctx, query, domain.ResultVideo, maxResults)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return []domain.Video{}, nil
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}

	videos, err := c.videosByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("search %q stats: %w", query, err)
	}
	return videos, nil
}

func (c *Client) videosByID(ctx context.Context, ids []string) ([]domain.Video, error) {
	params := url.Values{}
	params.Set("part", partFull)
	params.Set("id", strings.Join(ids, ","))

	items, err := c.list(ctx, "videos", params)
	if err != nil {
		return nil, err
	}
	return c.transformVideos(items), nil
}

func (c *Client) transformVideos(items []json.RawMessage) []domain.Video {
	videos := make([]domain.Video, 0, len(items))

	for _, raw := range items {
		var item VideoItem
		if err := json.Unmarshal(raw, &item); err != nil {
			c.logger.Warn("failed to decode video item", "error", err)
			continue
		}
		video, err := NormalizeVideo(item)
		if err != nil {
			c.logger.Warn("skipping video item", "error", err)
			continue
		}
		videos = append(videos, video)
	}

	return videos
}

func (c *Client) transformSearch(items []json.RawMessage, typ domain.ResultType) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(items))

	for _, raw := range items {
		var item SearchItem
		if err := json.Unmarshal(raw, &item); err != nil {
			c.logger.Warn("failed to decode search item", "error", err)
			continue
		}
		result, err := NormalizeSearchResult(item, typ)
		if err != nil {
			c.logger.Warn("skipping search item", "error", err)
			continue
		}
		results = append(results, result)
	}

	return results
}
