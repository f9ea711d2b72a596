package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	digitsRE    = regexp.MustCompile(`\d+`)
	bracketRE   = regexp.MustCompile(`[\[(]`)
	linkRE      = regexp.MustCompile(`https?://`)
	timestampRE = regexp.MustCompile(`\d+:\d+`)
)

// Result is a score with the advice that produced it.
type Result struct {
	Score  float64  `json:"score"`
	Tips   []string `json:"tips"`
	Issues []string `json:"issues"`
}

func (r *Result) tip(points float64, text string) {
	r.Score += points
	r.Tips = append(r.Tips, text)
}

func (r *Result) issue(points float64, text string) {
	r.Score += points
	r.Issues = append(r.Issues, text)
}

func newResult() Result {
	return Result{Tips: []string{}, Issues: []string{}}
}

// ScoreTitle grades a video title against a target keyword with the SEOTitle table.
func ScoreTitle(title, keyword string) Result {
	rules := SEOTitle
	r := newResult()
	length := utf8.RuneCountInString(title)

	switch {
	case length >= rules.MinLength && length <= rules.MaxLength:
		r.tip(rules.OptimalLength, fmt.Sprintf("title length is optimal (%d-%d characters)", rules.MinLength, rules.MaxLength))
	case length > 0 && length < rules.MinLength:
		r.issue(rules.OffBandLength, fmt.Sprintf("title is too short, aim for %d-%d characters", rules.MinLength, rules.MaxLength))
	case length > rules.MaxLength:
		r.issue(rules.OffBandLength, fmt.Sprintf("title is too long, aim for %d-%d characters", rules.MinLength, rules.MaxLength))
	}

	if keyword != "" {
		if pos := runeIndex(strings.ToLower(title), strings.ToLower(keyword)); pos < 0 {
			r.issue(0, "keyword not found in title")
		} else if pos <= rules.KeywordWindow {
			r.tip(rules.KeywordEarly, "keyword appears at the start of the title")
		} else {
			r.tip(rules.KeywordLate, "move the keyword closer to the start of the title")
		}
	}

	if digitsRE.MatchString(title) {
		r.tip(rules.Digits, "title uses numbers")
	} else {
		r.issue(0, `consider adding a number (e.g. "5 ways", "2024")`)
	}

	if containsAny(strings.ToLower(title), rules.PowerWords) {
		r.tip(rules.PowerWord, "title uses power words")
	} else {
		r.issue(0, "use power words (tutorial, tips, how to, ...)")
	}

	if bracketRE.MatchString(title) {
		r.tip(rules.Brackets, "title uses brackets for emphasis")
	}

	if title == strings.ToUpper(title) && length > rules.AllCapsMinLength {
		r.issue(rules.AllCapsPenalty, "avoid writing the whole title in capitals")
	}

	if containsRange(title, rules.EmojiRange) {
		r.tip(rules.Emoji, "title uses emoji to catch attention")
	} else {
		r.issue(0, "consider adding a relevant emoji")
	}

	r.Score = clamp(r.Score)
	return r
}

// ScoreDescription grades a video description with the SEODescription table.
func ScoreDescription(description, keyword string) Result {
	rules := SEODescription
	r := newResult()
	length := utf8.RuneCountInString(description)
	lower := strings.ToLower(description)
	kw := strings.ToLower(keyword)

	switch {
	case length >= rules.MinLength:
		r.tip(rules.Length, "description is long enough")
	case length > 0:
		r.issue(float64(length)/float64(rules.MinLength)*rules.Length,
			fmt.Sprintf("description is too short (%d/%d characters)", length, rules.MinLength))
	}

	if keyword != "" && length >= rules.KeywordWindow {
		if strings.Contains(firstRunes(lower, rules.KeywordWindow), kw) {
			r.tip(rules.KeywordEarly, fmt.Sprintf("keyword is in the first %d characters", rules.KeywordWindow))
		} else {
			r.issue(0, fmt.Sprintf("keyword should be in the first %d characters", rules.KeywordWindow))
		}
	}

	if keyword != "" && length > 0 {
		n := strings.Count(lower, kw)
		switch {
		case n >= rules.MinFrequency && n <= rules.MaxFrequency:
			r.tip(rules.FrequencyOptimal, fmt.Sprintf("keyword appears %dx (optimal %d-%dx)", n, rules.MinFrequency, rules.MaxFrequency))
		case n == 1:
			r.issue(rules.FrequencySingle, fmt.Sprintf("keyword appears once, optimal %d-%dx", rules.MinFrequency, rules.MaxFrequency))
		case n > rules.MaxFrequency:
			r.issue(rules.FrequencyStuffed, "keyword appears too often (keyword stuffing)")
		default:
			r.issue(0, "keyword not found in description")
		}
	}

	if linkRE.MatchString(description) {
		r.tip(rules.Links, "description links to social media or a website")
	} else {
		r.issue(0, "add links to social media or a website")
	}

	if timestampRE.MatchString(description) {
		r.tip(rules.Timestamps, "description has timestamps")
	} else {
		r.issue(0, "add timestamps for easier navigation")
	}

	r.Score = clamp(r.Score)
	return r
}

// TagsResult is a tags score plus the number of tags scored.
type TagsResult struct {
	Result
	Count int `json:"count"`
}

// ParseTags splits a comma separated tag list, dropping empty entries.
func ParseTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ScoreTags grades a tag list with the SEOTags table.
func ScoreTags(tags []string, keyword string) TagsResult {
	rules := SEOTags
	r := newResult()
	n := len(tags)

	switch {
	case n >= rules.MinCount && n <= rules.MaxCount:
		r.tip(rules.CountOptimal, fmt.Sprintf("tag count is optimal (%d tags)", n))
	case n > 0 && n < rules.MinCount:
		r.issue(float64(n)/float64(rules.MinCount)*rules.CountOptimal,
			fmt.Sprintf("add more tags (%d/%d-%d)", n, rules.MinCount, rules.MaxCount))
	case n > rules.MaxCount:
		r.issue(rules.CountTooMany, "too many tags, keep the most relevant ones")
	}

	if keyword != "" && n > 0 {
		found := false
		for _, t := range tags {
			if strings.EqualFold(t, keyword) {
				found = true
				break
			}
		}
		if found {
			r.tip(rules.Keyword, "target keyword is one of the tags")
		} else {
			r.issue(0, "target keyword should be the first tag")
		}
	}

	var broad, longTail bool
	for _, t := range tags {
		words := len(strings.Split(t, " "))
		broad = broad || words == 1
		longTail = longTail || words >= rules.LongTailWords
	}
	switch {
	case broad && longTail:
		r.tip(rules.Mix, "tags mix broad and long-tail terms")
	case n > 0:
		r.issue(rules.NoMix, fmt.Sprintf("mix broad tags (1 word) and long-tail tags (%d+ words)", rules.LongTailWords))
	}

	tooLong := 0
	for _, t := range tags {
		if utf8.RuneCountInString(t) > rules.MaxTagLength {
			tooLong++
		}
	}
	switch {
	case tooLong > 0:
		r.issue(0, fmt.Sprintf("%d tags are too long (>%d characters)", tooLong, rules.MaxTagLength))
	case n > 0:
		r.tip(rules.TagLength, "every tag has a good length")
	}

	r.Score = clamp(r.Score)
	return TagsResult{Result: r, Count: n}
}

// SEOReport is the combined SEO studio analysis.
type SEOReport struct {
	Overall     float64    `json:"overall"`
	Grade       Grade      `json:"grade"`
	Title       Result     `json:"title"`
	Description Result     `json:"description"`
	Tags        TagsResult `json:"tags"`
}

// AnalyzeSEO scores title, description and a comma separated tag list.
func AnalyzeSEO(title, description, tags, keyword string) SEOReport {
	t := ScoreTitle(title, keyword)
	d := ScoreDescription(description, keyword)
	g := ScoreTags(ParseTags(tags), keyword)
	overall := Overall(t.Score, d.Score, g.Score)

	return SEOReport{
		Overall:     overall,
		Grade:       GradeOf(overall),
		Title:       t,
		Description: d,
		Tags:        g,
	}
}

// Overall is the rounded mean of the three SEO scores.
func Overall(title, description, tags float64) float64 {
	return clamp(math.Floor((title+description+tags)/3 + 0.5))
}

type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeAverage   Grade = "average"
	GradePoor      Grade = "poor"
)

func GradeOf(score float64) Grade {
	switch {
	case score >= 80:
		return GradeExcellent
	case score >= 60:
		return GradeGood
	case score >= 40:
		return GradeAverage
	}
	return GradePoor
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func containsRange(s string, table *unicode.RangeTable) bool {
	for _, r := range s {
		if unicode.Is(table, r) {
			return true
		}
	}
	return false
}

// runeIndex is strings.Index counted in runes.
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}

func firstRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
