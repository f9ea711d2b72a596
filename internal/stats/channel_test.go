package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube_analytics/internal/domain"
)

func channel(subs, views, videos string) domain.Channel {
	return domain.Channel{SubscriberCount: subs, ViewCount: views, VideoCount: videos}
}

func TestChannelPerformanceScore(t *testing.T) {
	tests := []struct {
		name string
		c    domain.Channel
		want float64
	}{
		{"large channel", channel("1500000", "50000000", "200"), 75},
		{"empty channel", channel("0", "0", "0"), 30},
		{"maximum", channel("2000000", "10000000", "2"), 30 + 30 + 20 + 5},
		{"unparsable counts", channel("hidden", "", "x"), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChannelPerformanceScore(tt.c)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestPredictGrowth(t *testing.T) {
	g := PredictGrowth(channel("1500000", "50000000", "200"))

	assert.Equal(t, Growth{Daily: 2500, Weekly: 17500, Monthly: 75000}, g)
	assert.Equal(t, Growth{}, PredictGrowth(channel("0", "0", "0")))
}

func TestChannelHealthAndStrategyAreCapped(t *testing.T) {
	huge := channel("900000000", "90000000000", "90000")

	for _, m := range append(ChannelHealth(huge), ContentStrategy(huge)...) {
		assert.LessOrEqual(t, m.Value, 100.0, m.Name)
		assert.GreaterOrEqual(t, m.Value, 0.0, m.Name)
	}

	health := ChannelHealth(channel("500000", "1000000", "100"))
	require.Len(t, health, 4)
	assert.Equal(t, "Subscribers", health[0].Name)
	assert.InDelta(t, 50, health[0].Value, 1e-9)
	assert.InDelta(t, 10, health[1].Value, 1e-9)
	assert.InDelta(t, 10, health[2].Value, 1e-9)
	assert.InDelta(t, 100, health[3].Value, 1e-9)
}

func TestSortVideos(t *testing.T) {
	videos := []domain.Video{
		{ID: "a", ViewCount: "10", LikeCount: "5", CommentCount: "1"},
		{ID: "b", ViewCount: "30", LikeCount: "5", CommentCount: "9"},
		{ID: "c", ViewCount: "20", LikeCount: "7", CommentCount: "3"},
	}

	ids := func(vs []domain.Video) []string {
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			out = append(out, v.ID)
		}
		return out
	}

	assert.Equal(t, []string{"b", "c", "a"}, ids(SortVideos(videos, SortViews)))
	assert.Equal(t, []string{"c", "a", "b"}, ids(SortVideos(videos, SortLikes)))
	assert.Equal(t, []string{"b", "c", "a"}, ids(SortVideos(videos, SortComments)))
	assert.Equal(t, []string{"a", "b", "c"}, ids(videos))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortViews, k)

	k, err = ParseSortKey("likes")
	require.NoError(t, err)
	assert.Equal(t, SortLikes, k)

	_, err = ParseSortKey("dislikes")
	assert.Error(t, err)
}

func TestEngagementBreakdown(t *testing.T) {
	assert.Equal(t, Engagement{Likes: 50, Comments: 10, ViewsOnly: 940},
		EngagementBreakdown(domain.Video{ViewCount: "1000", LikeCount: "50", CommentCount: "10"}))

	assert.Equal(t, Engagement{Likes: 50, Comments: 10, ViewsOnly: 0},
		EngagementBreakdown(domain.Video{ViewCount: "20", LikeCount: "50", CommentCount: "10"}))
}

func TestCompareCompetitors(t *testing.T) {
	channels := []domain.Channel{
		{Title: "A very long channel title", SubscriberCount: "100", ViewCount: "1000", VideoCount: "10"},
		{Title: "B", SubscriberCount: "50", ViewCount: "4000", VideoCount: "20"},
	}

	bars := CompareBars(channels)
	require.Len(t, bars, 2)
	assert.Equal(t, "A very long cha", bars[0].Channel)
	assert.InDelta(t, 0.001, bars[0].ViewsM, 1e-12)

	radar := CompareRadar(channels)
	require.Len(t, radar, 2)
	assert.InDelta(t, 100, radar[0].Subscribers, 1e-9)
	assert.InDelta(t, 25, radar[0].Views, 1e-9)
	assert.InDelta(t, 50, radar[0].Videos, 1e-9)
	assert.InDelta(t, 50, radar[0].AvgViews, 1e-9)
	assert.InDelta(t, 100, radar[0].Engagement, 1e-9)
	assert.InDelta(t, 100, radar[1].Views, 1e-9)
	assert.InDelta(t, 100, radar[1].AvgViews, 1e-9)

	assert.Nil(t, CompareRadar(nil))
	assert.Empty(t, CompareBars(nil))
}

func TestCompareRadar_ZeroChannels(t *testing.T) {
	radar := CompareRadar([]domain.Channel{channel("0", "0", "0")})
	require.Len(t, radar, 1)
	assert.Equal(t, CompetitorRadar{}, radar[0])
}

func TestScheduleFor(t *testing.T) {
	tech := ScheduleFor(NicheTech)
	assert.Equal(t, "18:00", tech.PeakHour)
	assert.Equal(t, "Thursday", tech.PeakDay)
	assert.Equal(t, "Technology", tech.Info.Name)
	require.NotEmpty(t, tech.Performance)
	assert.Equal(t, 62.5, tech.Performance[0].Value)

	gaming := ScheduleFor(NicheGaming)
	assert.Equal(t, "21:00", gaming.PeakHour)
	assert.Equal(t, "Saturday", gaming.PeakDay)
}

func TestParseNiche(t *testing.T) {
	n, err := ParseNiche("")
	require.NoError(t, err)
	assert.Equal(t, NicheTech, n)

	_, err = ParseNiche("cooking")
	assert.Error(t, err)
}
