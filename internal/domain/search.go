package domain

// ResultType tells a video result from a channel result.
type ResultType string

const (
	ResultVideo   ResultType = "video"
	ResultChannel ResultType = "channel"
)

// Valid reports whether t is one of the known result types.
func (t ResultType) Valid() bool {
	return t == ResultVideo || t == ResultChannel
}

type SearchResult struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Type         ResultType `json:"type"`
}

