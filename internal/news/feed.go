package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// Feed supplies recent headlines. Order is returned as the source
// provides it; chronological ordering is not guaranteed, so consumers
// must filter by publish time rather than position.
type Feed interface {
	Fetch(ctx context.Context) ([]model.NewsItem, error)
	Name() string
}

// GoogleNewsFeed reads the Google News RSS search feed for a query.
type GoogleNewsFeed struct {
	Query  string
	parser *gofeed.Parser
}

// NewGoogleNewsFeed creates the feed with optional proxy support.
func NewGoogleNewsFeed(query, proxyURL string, timeout time.Duration) *GoogleNewsFeed {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	parser := gofeed.NewParser()
	parser.Client = &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
	return &GoogleNewsFeed{Query: query, parser: parser}
}

func (f *GoogleNewsFeed) Name() string { return "google-news" }

func (f *GoogleNewsFeed) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	feedURL := fmt.Sprintf("https://news.google.com/rss/search?q=%s", url.QueryEscape(f.Query))
	parsed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	items := make([]model.NewsItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		item := model.NewsItem{Title: it.Title}
		if it.PublishedParsed != nil {
			item.Published = it.PublishedParsed.UTC()
		}
		items = append(items, item)
	}
	return items, nil
}
