package stats

import (
	"fmt"
	"sort"

	"tube_analytics/internal/domain"
)

// SortKey selects the statistic SortVideos orders by.
type SortKey string

const (
	SortViews    SortKey = "views"
	SortLikes    SortKey = "likes"
	SortComments SortKey = "comments"
)

// ParseSortKey validates a sort key given on the command line.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortViews, SortLikes, SortComments:
		return k, nil
	case "":
		return SortViews, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", s)
	}
}

// SortVideos returns a copy of videos ordered by key, highest first.
// Equal values keep their input order.
func SortVideos(videos []domain.Video, key SortKey) []domain.Video {
	sorted := make([]domain.Video, len(videos))
	copy(sorted, videos)

	value := func(v domain.Video) float64 {
		switch key {
		case SortLikes:
			return ParseCount(v.LikeCount)
		case SortComments:
			return ParseCount(v.CommentCount)
		default:
			return ParseCount(v.ViewCount)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) > value(sorted[j])
	})
	return sorted
}

// Engagement splits a video's views into likes, comments and views without
// either. ViewsOnly is never negative.
type Engagement struct {
	Likes     float64 `json:"likes"`
	Comments  float64 `json:"comments"`
	ViewsOnly float64 `json:"viewsOnly"`
}

func EngagementBreakdown(v domain.Video) Engagement {
	likes := ParseCount(v.LikeCount)
	comments := ParseCount(v.CommentCount)
	rest := ParseCount(v.ViewCount) - (likes + comments)
	if rest < 0 {
		rest = 0
	}
	return Engagement{Likes: likes, Comments: comments, ViewsOnly: rest}
}
