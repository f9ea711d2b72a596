package domain

// Thumbnails holds the three thumbnail resolutions the dashboard displays.
type Thumbnails struct {
	Default string `json:"default"`
	Medium  string `json:"medium"`
	High    string `json:"high"`
}

// Channel is a normalised snapshot of a channel lookup.
// Counts stay decimal strings as the upstream API sends them.
type Channel struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	CustomURL       string     `json:"customUrl"`
	PublishedAt     string     `json:"publishedAt"`
	Thumbnails      Thumbnails `json:"thumbnails"`
	SubscriberCount string     `json:"subscriberCount"`
	ViewCount       string     `json:"viewCount"`
	VideoCount      string     `json:"videoCount"`
	Country         string     `json:"country,omitempty"`
}
