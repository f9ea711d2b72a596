package stats

import (
	"math"

	"tube_analytics/internal/domain"
)

// Metric is one labelled percentage of a chart panel.
type Metric struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Growth is a naive subscriber growth projection.
type Growth struct {
	Daily   int64 `json:"daily"`
	Weekly  int64 `json:"weekly"`
	Monthly int64 `json:"monthly"`
}

type channelCounts struct {
	subs, views, videos, avgViews float64
}

func countsOf(c domain.Channel) channelCounts {
	cc := channelCounts{
		subs:   ParseCount(c.SubscriberCount),
		views:  ParseCount(c.ViewCount),
		videos: ParseCount(c.VideoCount),
	}
	cc.avgViews = ratio(cc.views, cc.videos)
	return cc
}

// ratio is a/b, or 0 when b is zero.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

type band struct {
	above  float64
	points float64
}

// bandPoints returns the points of the first band whose threshold v exceeds,
// or floor when none does. Bands are ordered from the highest threshold down.
func bandPoints(v float64, bands []band, floor float64) float64 {
	for _, b := range bands {
		if v > b.above {
			return b.points
		}
	}
	return floor
}

var (
	subscriberBands  = []band{{1e6, 30}, {1e5, 25}, {1e4, 20}, {1e3, 15}}
	avgViewBands     = []band{{1e6, 30}, {1e5, 25}, {1e4, 20}, {1e3, 15}}
	subsPerViewBands = []band{{10, 20}, {5, 15}, {2, 10}}
	videoCountBands  = []band{{1000, 20}, {500, 15}, {100, 10}}
)

// ChannelPerformanceScore grades a channel on subscribers, average views per
// video, subscribers per view and catalogue size. The result is at most 100.
func ChannelPerformanceScore(c domain.Channel) float64 {
	cc := countsOf(c)
	subsPerView := ratio(cc.subs, cc.views) * 100

	score := bandPoints(cc.subs, subscriberBands, 10) +
		bandPoints(cc.avgViews, avgViewBands, 10) +
		bandPoints(subsPerView, subsPerViewBands, 5) +
		bandPoints(cc.videos, videoCountBands, 5)

	return math.Min(score, 100)
}

// PredictGrowth projects daily subscriber growth from average views relative
// to the subscriber base.
func PredictGrowth(c domain.Channel) Growth {
	cc := countsOf(c)
	growthRate := ratio(cc.avgViews, cc.subs) * 100
	daily := int64(round(cc.subs * (growthRate / 100) * 0.01))

	return Growth{
		Daily:   daily,
		Weekly:  daily * 7,
		Monthly: daily * 30,
	}
}

// ChannelHealth returns the four capped health percentages of a channel.
func ChannelHealth(c domain.Channel) []Metric {
	cc := countsOf(c)
	return []Metric{
		{Name: "Subscribers", Value: capped(cc.subs / 1e6 * 100)},
		{Name: "Avg Views", Value: capped(cc.avgViews / 1e5 * 100)},
		{Name: "Content Volume", Value: capped(cc.videos / 1000 * 100)},
		{Name: "Engagement", Value: capped(ratio(cc.subs, cc.views) * 100 * 10)},
	}
}

// ContentStrategy returns quality, quantity, consistency and reach percentages.
func ContentStrategy(c domain.Channel) []Metric {
	cc := countsOf(c)
	return []Metric{
		{Name: "Quality", Value: capped(cc.avgViews / 10000 * 10)},
		{Name: "Quantity", Value: capped(cc.videos / 10 * 10)},
		{Name: "Consistency", Value: capped(cc.videos / 500 * 100)},
		{Name: "Reach", Value: capped(cc.views / 1e7 * 100)},
	}
}

func capped(v float64) float64 {
	return math.Min(v, 100)
}
