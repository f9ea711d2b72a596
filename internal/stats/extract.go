package stats

import (
	"regexp"

	"tube_analytics/internal/domain"
)

// Identifier is the result of ExtractID. The zero value means nothing matched.
type Identifier struct {
	Type domain.ResultType `json:"type"`
	ID   string            `json:"id"`
}

// Found reports whether an id was extracted.
func (i Identifier) Found() bool {
	return i.Type != ""
}

// Video patterns are tried before channel patterns.
var (
	videoPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	}
	channelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/channel/(UC[a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`youtube\.com/@([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`youtube\.com/c/([a-zA-Z0-9_-]+)`),
	}
)

// ExtractID pulls a video or channel id out of a free-form URL.
func ExtractID(input string) Identifier {
	for _, re := range videoPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return Identifier{Type: domain.ResultVideo, ID: m[1]}
		}
	}
	for _, re := range channelPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return Identifier{Type: domain.ResultChannel, ID: m[1]}
		}
	}
	return Identifier{}
}
