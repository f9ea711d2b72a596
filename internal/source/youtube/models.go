package youtube

import "encoding/json"

// listResponse is the envelope every Data API list endpoint returns.
type listResponse struct {
	Items []json.RawMessage `json:"items"`
}

type Thumbnail struct {
	URL string `json:"url"`
}

type ThumbnailSet struct {
	Default *Thumbnail `json:"default"`
	Medium  *Thumbnail `json:"medium"`
	High    *Thumbnail `json:"high"`
}

type Snippet struct {
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	CustomURL    string        `json:"customUrl"`
	PublishedAt  string        `json:"publishedAt"`
	ChannelID    string        `json:"channelId"`
	ChannelTitle string        `json:"channelTitle"`
	Country      string        `json:"country"`
	Tags         []string      `json:"tags"`
	Thumbnails   *ThumbnailSet `json:"thumbnails"`
}

type Statistics struct {
	ViewCount       string `json:"viewCount"`
	LikeCount       string `json:"likeCount"`
	CommentCount    string `json:"commentCount"`
	SubscriberCount string `json:"subscriberCount"`
	VideoCount      string `json:"videoCount"`
}

type ContentDetails struct {
	Duration string `json:"duration"`
}

// ChannelItem is one element of a channels.list response.
type ChannelItem struct {
	ID         string      `json:"id"`
	Snippet    *Snippet    `json:"snippet"`
	Statistics *Statistics `json:"statistics"`
}

// VideoItem is one element of a videos.list response.
type VideoItem struct {
	ID             string          `json:"id"`
	Snippet        *Snippet        `json:"snippet"`
	Statistics     *Statistics     `json:"statistics"`
	ContentDetails *ContentDetails `json:"contentDetails"`
}

type SearchID struct {
	Kind      string `json:"kind"`
	VideoID   string `json:"videoId"`
	ChannelID string `json:"channelId"`
}

// SearchItem is one element of a search.list response.
type SearchItem struct {
	ID      SearchID `json:"id"`
	Snippet *Snippet `json:"snippet"`
}
