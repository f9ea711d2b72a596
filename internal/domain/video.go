package domain

type Video struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ChannelTitle string     `json:"channelTitle"`
	ViewCount    string     `json:"viewCount"`
	LikeCount    string     `json:"likeCount"`
	CommentCount string     `json:"commentCount"`
	Duration     string     `json:"duration"` // ISO-8601, e.g. PT4M13S
	Tags         []string   `json:"tags"`
}
