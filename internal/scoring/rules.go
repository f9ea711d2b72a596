// Package scoring holds the presentation heuristics of the dashboard: SEO
// scores for title, description and tags, the A/B title power score and the
// keyword opportunity metrics. Every weight lives in a named rule table below
// and every score is clamped to [0,100].
package scoring

import "unicode"

// TitleRules is the SEO studio title table.
type TitleRules struct {
	MinLength, MaxLength int
	OptimalLength        float64
	OffBandLength        float64

	KeywordWindow int // keyword index at or below this counts as "at the start"
	KeywordEarly  float64
	KeywordLate   float64

	Digits    float64
	PowerWord float64
	Brackets  float64
	Emoji     float64

	AllCapsMinLength int
	AllCapsPenalty   float64

	PowerWords []string
	EmojiRange *unicode.RangeTable
}

// DescriptionRules is the SEO studio description table.
type DescriptionRules struct {
	MinLength int
	Length    float64

	KeywordWindow int
	KeywordEarly  float64

	MinFrequency, MaxFrequency int
	FrequencyOptimal           float64
	FrequencySingle            float64
	FrequencyStuffed           float64

	Links      float64
	Timestamps float64
}

// TagRules is the SEO studio tags table.
type TagRules struct {
	MinCount, MaxCount int
	CountOptimal       float64
	CountTooMany       float64

	Keyword float64

	LongTailWords int
	Mix           float64
	NoMix         float64

	MaxTagLength int
	TagLength    float64
}

// PowerRules is the A/B testing title table.
type PowerRules struct {
	MinOptimal, MaxOptimal int
	ShortBelow             int
	Perfect                float64
	OffBand                float64
	NearBand               float64

	Digits    float64
	PowerWord float64
	Emotional float64
	Brackets  float64
	Emoji     float64

	ClickabilityFactor float64
	TieMargin          float64

	PowerWords     []string
	EmotionalWords []string
}

// KeywordRules is the keyword explorer table.
type KeywordRules struct {
	SampleSize         int     // videos requested per keyword
	VolumeDivisor      float64 // videoCount*avgViews is divided by this
	CompetitionWeight  float64 // share of competition subtracted from volume
	SubscriberEstimate float64 // avg views multiplier for the top channel estimate
}

var SEOTitle = TitleRules{
	MinLength:        60,
	MaxLength:        70,
	OptimalLength:    30,
	OffBandLength:    15,
	KeywordWindow:    10,
	KeywordEarly:     30,
	KeywordLate:      20,
	Digits:           10,
	PowerWord:        10,
	Brackets:         10,
	Emoji:            10,
	AllCapsMinLength: 5,
	AllCapsPenalty:   -10,
	PowerWords: []string{
		"tutorial", "cara", "tips", "trik", "rahasia", "mudah", "cepat", "lengkap",
		"terbaik", "gratis", "free", "how to", "best", "ultimate", "complete",
	},
	EmojiRange: seoEmoji,
}

var SEODescription = DescriptionRules{
	MinLength:        200,
	Length:           25,
	KeywordWindow:    100,
	KeywordEarly:     25,
	MinFrequency:     2,
	MaxFrequency:     4,
	FrequencyOptimal: 20,
	FrequencySingle:  10,
	FrequencyStuffed: 5,
	Links:            15,
	Timestamps:       15,
}

var SEOTags = TagRules{
	MinCount:      15,
	MaxCount:      20,
	CountOptimal:  30,
	CountTooMany:  20,
	Keyword:       25,
	LongTailWords: 3,
	Mix:           25,
	NoMix:         15,
	MaxTagLength:  30,
	TagLength:     20,
}

var TitlePowerRules = PowerRules{
	MinOptimal:         60,
	MaxOptimal:         70,
	ShortBelow:         40,
	Perfect:            25,
	OffBand:            10,
	NearBand:           20,
	Digits:             20,
	PowerWord:          20,
	Emotional:          15,
	Brackets:           10,
	Emoji:              10,
	ClickabilityFactor: 1.1,
	TieMargin:          5,
	PowerWords: []string{
		"tutorial", "how to", "best", "top", "ultimate", "complete", "guide", "tips",
		"tricks", "secret", "cara", "terbaik", "lengkap", "mudah", "cepat",
	},
	EmotionalWords: []string{
		"amazing", "incredible", "shocking", "unbelievable", "must see", "wow", "epic",
		"luar biasa", "menakjubkan", "viral",
	},
}

var Keyword = KeywordRules{
	SampleSize:         50,
	VolumeDivisor:      1e6,
	CompetitionWeight:  0.5,
	SubscriberEstimate: 10,
}

// seoEmoji covers emoticons, symbols and pictographs, transport, regional
// indicators, miscellaneous symbols and dingbats.
var seoEmoji = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1},
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1},
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
	},
}

// powerEmoji is any rune outside the basic multilingual plane plus the
// miscellaneous symbols and dingbats blocks.
var powerEmoji = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: unicode.MaxRune, Stride: 1},
	},
}

func clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}
