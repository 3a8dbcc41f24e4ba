package news

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cariantohs/xaut-trading-bot/internal/config"
	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// Scorer aggregates a window of headlines into one integer score.
//
// Only the first MaxHeadlines items are considered (a positional prefix
// cap, not a relevance filter). Items without a publish time or older
// than MaxAgeHours relative to the evaluation instant are dropped. Each
// remaining headline contributes +1/-1/0 by polarity, doubled when the
// title contains a high-impact keyword.
type Scorer struct {
	cfg        config.Sentiment
	classifier Classifier
	log        *zap.SugaredLogger
}

// NewScorer creates a Scorer.
func NewScorer(cfg config.Sentiment, classifier Classifier, log *zap.SugaredLogger) *Scorer {
	return &Scorer{cfg: cfg, classifier: classifier, log: log}
}

// Score aggregates the headlines against evaluation instant now.
func (s *Scorer) Score(now time.Time, items []model.NewsItem) int {
	if len(items) > s.cfg.MaxHeadlines {
		items = items[:s.cfg.MaxHeadlines]
	}
	maxAge := time.Duration(s.cfg.MaxAgeHours) * time.Hour

	total := 0
	for _, it := range items {
		if it.Published.IsZero() {
			continue
		}
		if now.Sub(it.Published) > maxAge {
			continue
		}
		p := s.classifier.Polarity(it.Title)
		score := 0
		switch {
		case p > s.cfg.PositiveThreshold:
			score = 1
		case p < s.cfg.NegativeThreshold:
			score = -1
		}
		if s.hasHighImpactKeyword(it.Title) {
			score *= 2
		}
		total += score
	}
	return total
}

// ScoreFeed fetches and scores the feed. Any retrieval or parsing fault
// degrades to a neutral 0, never an error: the decision proceeds on the
// technical vote alone.
func (s *Scorer) ScoreFeed(ctx context.Context, feed Feed) int {
	items, err := feed.Fetch(ctx)
	if err != nil {
		s.log.Warnw("news fetch failed, scoring neutral", "feed", feed.Name(), "error", err)
		return 0
	}
	score := s.Score(time.Now().UTC(), items)
	s.log.Debugw("news scored", "feed", feed.Name(), "headlines", len(items), "score", score)
	return score
}

func (s *Scorer) hasHighImpactKeyword(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range s.cfg.HighImpactKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
