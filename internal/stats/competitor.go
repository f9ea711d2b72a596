package stats

import (
	"tube_analytics/internal/domain"
)

// MaxCompetitors is the number of channels a comparison holds.
const MaxCompetitors = 5

const labelLength = 15

// CompetitorBar is the raw side-by-side comparison of one channel.
// Views are expressed in millions.
type CompetitorBar struct {
	Channel     string  `json:"channel"`
	Subscribers float64 `json:"subscribers"`
	ViewsM      float64 `json:"viewsMillions"`
	Videos      float64 `json:"videos"`
}

// CompetitorRadar scores one channel relative to the strongest channel of the set.
type CompetitorRadar struct {
	Channel     string  `json:"channel"`
	Subscribers float64 `json:"subscribers"`
	Views       float64 `json:"views"`
	Videos      float64 `json:"videos"`
	AvgViews    float64 `json:"avgViews"`
	Engagement  float64 `json:"engagement"`
}

func CompareBars(channels []domain.Channel) []CompetitorBar {
	bars := make([]CompetitorBar, 0, len(channels))
	for _, c := range channels {
		cc := countsOf(c)
		bars = append(bars, CompetitorBar{
			Channel:     label(c.Title),
			Subscribers: cc.subs,
			ViewsM:      cc.views / 1e6,
			Videos:      cc.videos,
		})
	}
	return bars
}

// CompareRadar normalises every channel against the maxima of the set.
func CompareRadar(channels []domain.Channel) []CompetitorRadar {
	if len(channels) == 0 {
		return nil
	}

	var maxSubs, maxViews, maxVideos float64
	counts := make([]channelCounts, len(channels))
	for i, c := range channels {
		cc := countsOf(c)
		counts[i] = cc
		maxSubs = max(maxSubs, cc.subs)
		maxViews = max(maxViews, cc.views)
		maxVideos = max(maxVideos, cc.videos)
	}
	maxAvg := ratio(maxViews, maxVideos)

	radar := make([]CompetitorRadar, 0, len(channels))
	for i, c := range channels {
		cc := counts[i]
		radar = append(radar, CompetitorRadar{
			Channel:     label(c.Title),
			Subscribers: ratio(cc.subs, maxSubs) * 100,
			Views:       ratio(cc.views, maxViews) * 100,
			Videos:      ratio(cc.videos, maxVideos) * 100,
			AvgViews:    ratio(cc.avgViews, maxAvg) * 100,
			Engagement:  ratio(cc.subs, cc.views) * 100 * 10,
		})
	}
	return radar
}

func label(title string) string {
	r := []rune(title)
	if len(r) > labelLength {
		return string(r[:labelLength])
	}
	return title
}
