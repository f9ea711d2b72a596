package domain

import "time"

// TrendingSnapshot is one region's trending list at a point in time.
type TrendingSnapshot struct {
	Region    string    `json:"region"`
	FetchedAt time.Time `json:"fetchedAt"`
	Videos    []Video   `json:"videos"`
}

// WatchStats holds statistics about a trend watch run.
type WatchStats struct {
	Regions   int
	Fetched   int
	Published int
	Errors    int
	Duration  time.Duration
}
