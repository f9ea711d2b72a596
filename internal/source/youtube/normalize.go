package youtube

import (
	"fmt"

	"tube_analytics/internal/domain"
)

const zeroCount = "0"

const (
	kindVideo   = "youtube#video"
	kindChannel = "youtube#channel"
)

// NormalizeChannel maps a channels.list item into a domain.Channel.
func NormalizeChannel(item ChannelItem) (domain.Channel, error) {
	if item.Snippet == nil {
		return domain.Channel{}, fmt.Errorf("channel %q: missing snippet: %w", item.ID, ErrMalformedResponse)
	}
	s := item.Snippet
	stats := item.Statistics
	if stats == nil {
		stats = &Statistics{}
	}

	return domain.Channel{
		ID:              item.ID,
		Title:           s.Title,
		Description:     s.Description,
		CustomURL:       s.CustomURL,
		PublishedAt:     s.PublishedAt,
		Thumbnails:      pickThumbnails(s.Thumbnails),
		SubscriberCount: countOrZero(stats.SubscriberCount),
		ViewCount:       countOrZero(stats.ViewCount),
		VideoCount:      countOrZero(stats.VideoCount),
		Country:         s.Country,
	}, nil
}

// NormalizeVideo maps a videos.list item into a domain.Video.
// Missing statistics or contentDetails blocks yield zero counts and an empty duration.
func NormalizeVideo(item VideoItem) (domain.Video, error) {
	if item.Snippet == nil {
		return domain.Video{}, fmt.Errorf("video %q: missing snippet: %w", item.ID, ErrMalformedResponse)
	}
	s := item.Snippet
	stats := item.Statistics
	if stats == nil {
		stats = &Statistics{}
	}

	video := domain.Video{
		ID:           item.ID,
		Title:        s.Title,
		Description:  s.Description,
		PublishedAt:  s.PublishedAt,
		Thumbnails:   pickThumbnails(s.Thumbnails),
		ChannelTitle: s.ChannelTitle,
		ViewCount:    countOrZero(stats.ViewCount),
		LikeCount:    countOrZero(stats.LikeCount),
		CommentCount: countOrZero(stats.CommentCount),
		Tags:         make([]string, 0, len(s.Tags)),
	}
	video.Tags = append(video.Tags, s.Tags...)
	if item.ContentDetails != nil {
		video.Duration = item.ContentDetails.Duration
	}

	return video, nil
}

// NormalizeSearchResult maps a search.list item into a domain.SearchResult.
// The result type comes from id.kind when present, otherwise from fallback.
func NormalizeSearchResult(item SearchItem, fallback domain.ResultType) (domain.SearchResult, error) {
	if item.Snippet == nil {
		return domain.SearchResult{}, fmt.Errorf("search item: missing snippet: %w", ErrMalformedResponse)
	}

	typ := fallback
	switch item.ID.Kind {
	case kindVideo:
		typ = domain.ResultVideo
	case kindChannel:
		typ = domain.ResultChannel
	}

	id := item.ID.VideoID
	if typ == domain.ResultChannel {
		id = item.ID.ChannelID
	}
	if id == "" {
		return domain.SearchResult{}, fmt.Errorf("search item: missing %s id: %w", typ, ErrMalformedResponse)
	}

	s := item.Snippet
	return domain.SearchResult{
		ID:           id,
		Title:        s.Title,
		Description:  s.Description,
		Thumbnails:   pickThumbnails(s.Thumbnails),
		ChannelTitle: s.ChannelTitle,
		PublishedAt:  s.PublishedAt,
		Type:         typ,
	}, nil
}

// pickThumbnails fills each resolution, falling back high -> medium -> default.
func pickThumbnails(set *ThumbnailSet) domain.Thumbnails {
	if set == nil {
		return domain.Thumbnails{}
	}
	def := thumbURL(set.Default)
	medium := firstNonEmpty(thumbURL(set.Medium), def)
	high := firstNonEmpty(thumbURL(set.High), medium)
	return domain.Thumbnails{
		Default: def,
		Medium:  medium,
		High:    high,
	}
}

func thumbURL(t *Thumbnail) string {
	if t == nil {
		return ""
	}
	return t.URL
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func countOrZero(s string) string {
	if s == "" {
		return zeroCount
	}
	return s
}
