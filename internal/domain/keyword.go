package domain

// KeywordMetric is derived per analysis and never stored.
// The four scores are bounded to [0,100].
type KeywordMetric struct {
	Keyword      string  `json:"keyword"`
	SearchVolume float64 `json:"searchVolume"`
	Competition  float64 `json:"competition"`
	Difficulty   float64 `json:"difficulty"`
	Opportunity  float64 `json:"opportunity"`

	VideoCount        int     `json:"videoCount"`
	AvgViews          float64 `json:"avgViews"`
	TopChannelAvgSubs float64 `json:"topChannelAvgSubs"`
}
