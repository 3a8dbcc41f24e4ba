package model

import "time"

// NewsItem is a single headline from a feed. Published is the zero time
// when the feed did not carry a publish timestamp; the scorer drops
// such items.
type NewsItem struct {
	Title     string
	Published time.Time
}
