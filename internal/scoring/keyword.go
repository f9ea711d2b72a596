package scoring

import (
	"math"

	"tube_analytics/internal/domain"
	"tube_analytics/internal/stats"
)

// KeywordMetrics derives the simulated volume, competition, difficulty and
// opportunity of a keyword from the videos a search for it returned.
func KeywordMetrics(keyword string, videos []domain.Video) domain.KeywordMetric {
	rules := Keyword
	n := len(videos)

	var totalViews float64
	for _, v := range videos {
		totalViews += stats.ParseCount(v.ViewCount)
	}
	var avgViews float64
	if n > 0 {
		avgViews = totalViews / float64(n)
	}

	volume := clamp(roundHalfUp(float64(n) * avgViews / rules.VolumeDivisor))
	competition := clamp(roundHalfUp(float64(n) / float64(rules.SampleSize) * 100))
	opportunity := clamp(volume - competition*rules.CompetitionWeight)

	var topSubs float64
	if n > 0 {
		topSubs = roundHalfUp(avgViews * rules.SubscriberEstimate)
	}

	return domain.KeywordMetric{
		Keyword:           keyword,
		SearchVolume:      volume,
		Competition:       competition,
		Difficulty:        competition,
		Opportunity:       opportunity,
		VideoCount:        n,
		AvgViews:          roundHalfUp(avgViews),
		TopChannelAvgSubs: topSubs,
	}
}

type Difficulty string

const (
	DifficultyVeryHard Difficulty = "Very Hard"
	DifficultyHard     Difficulty = "Hard"
	DifficultyMedium   Difficulty = "Medium"
	DifficultyEasy     Difficulty = "Easy"
)

func DifficultyLabel(difficulty float64) Difficulty {
	switch {
	case difficulty >= 70:
		return DifficultyVeryHard
	case difficulty >= 50:
		return DifficultyHard
	case difficulty >= 30:
		return DifficultyMedium
	}
	return DifficultyEasy
}

// ExplorerVariations are the related keywords the explorer analyses alongside
// the main keyword.
func ExplorerVariations(keyword string) []string {
	return []string{
		keyword + " tutorial",
		keyword + " untuk pemula",
		keyword + " bahasa indonesia",
		"cara " + keyword,
		keyword + " 2025",
	}
}

// RelatedSuggestions are the follow-up searches offered under search results.
func RelatedSuggestions(keyword string) []string {
	return []string{
		keyword + " tutorial",
		keyword + " untuk pemula",
		keyword + " indonesia",
		keyword + " 2025",
		keyword + " tips",
		keyword + " lengkap",
		"belajar " + keyword,
		"cara " + keyword,
	}
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
