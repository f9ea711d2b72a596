package scoring

import (
	"math"
	"strings"
	"unicode/utf8"
)

type Insight struct {
	Positive bool   `json:"positive"`
	Text     string `json:"text"`
}

// PowerResult is the A/B title power analysis of one title.
type PowerResult struct {
	Score        float64   `json:"score"`
	Clickability float64   `json:"clickability"`
	Insights     []Insight `json:"insights"`
}

// TitlePower scores a title with the TitlePowerRules table.
func TitlePower(title string) PowerResult {
	rules := TitlePowerRules
	res := PowerResult{Insights: []Insight{}}
	add := func(points float64, positive bool, text string) {
		res.Score += points
		if text != "" {
			res.Insights = append(res.Insights, Insight{Positive: positive, Text: text})
		}
	}

	length := utf8.RuneCountInString(title)
	lower := strings.ToLower(title)

	switch {
	case length >= rules.MinOptimal && length <= rules.MaxOptimal:
		add(rules.Perfect, true, "Perfect length")
	case length > rules.MaxOptimal:
		add(rules.OffBand, false, "Too long")
	case length < rules.ShortBelow:
		add(rules.OffBand, false, "Too short")
	default:
		add(rules.NearBand, true, "")
	}

	if digitsRE.MatchString(title) {
		add(rules.Digits, true, "Contains numbers")
	}
	if containsAny(lower, rules.PowerWords) {
		add(rules.PowerWord, true, "Has power words")
	}
	if containsAny(lower, rules.EmotionalWords) {
		add(rules.Emotional, true, "Emotional trigger")
	}
	if bracketRE.MatchString(title) {
		add(rules.Brackets, true, "Uses brackets")
	}
	if containsRange(title, powerEmoji) {
		add(rules.Emoji, true, "Includes emoji")
	}

	res.Score = clamp(res.Score)
	res.Clickability = clamp(res.Score * rules.ClickabilityFactor)
	return res
}

type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "tie"
)

// Comparison is the outcome of an A/B title test.
type Comparison struct {
	A            PowerResult `json:"a"`
	B            PowerResult `json:"b"`
	Winner       Winner      `json:"winner"`
	Margin       float64     `json:"margin"`
	Clickability float64     `json:"clickability"`
}

// CompareTitles scores both titles. Scores closer than the tie margin are a tie.
func CompareTitles(a, b string) Comparison {
	c := Comparison{A: TitlePower(a), B: TitlePower(b)}
	c.Margin = math.Abs(c.A.Score - c.B.Score)

	switch {
	case c.Margin < TitlePowerRules.TieMargin:
		c.Winner = WinnerTie
		c.Clickability = math.Max(c.A.Clickability, c.B.Clickability)
	case c.A.Score > c.B.Score:
		c.Winner = WinnerA
		c.Clickability = c.A.Clickability
	default:
		c.Winner = WinnerB
		c.Clickability = c.B.Clickability
	}
	return c
}
