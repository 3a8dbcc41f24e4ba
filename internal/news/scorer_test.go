package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cariantohs/xaut-trading-bot/internal/config"
	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// fixedClassifier returns the same polarity for every title.
type fixedClassifier struct{ polarity float64 }

func (f fixedClassifier) Polarity(string) float64 { return f.polarity }

// failingFeed always errors.
type failingFeed struct{}

func (failingFeed) Fetch(context.Context) ([]model.NewsItem, error) {
	return nil, errors.New("network down")
}
func (failingFeed) Name() string { return "failing" }

func testSentiment() config.Sentiment {
	return config.Sentiment{
		MaxHeadlines:       10,
		MaxAgeHours:        24,
		PositiveThreshold:  0.1,
		NegativeThreshold:  -0.1,
		HighImpactKeywords: []string{"fed", "inflation", "rate", "interest", "war", "gold", "dollar"},
	}
}

func newTestScorer(cls Classifier) *Scorer {
	return NewScorer(testSentiment(), cls, zap.NewNop().Sugar())
}

func TestScore_HighImpactKeywordDoubles(t *testing.T) {
	// One positive headline containing "interest" and "rate":
	// base +1, doubled to +2.
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []model.NewsItem{
		{Title: "Fed raises interest rate", Published: now.Add(-2 * time.Hour)},
	}
	s := newTestScorer(fixedClassifier{polarity: 0.5})
	if got := s.Score(now, items); got != 2 {
		t.Errorf("expected score 2, got %d", got)
	}
}

func TestScore_NeutralPolarityStaysZero(t *testing.T) {
	now := time.Now().UTC()
	items := []model.NewsItem{
		{Title: "Gold futures little changed", Published: now.Add(-time.Hour)},
	}
	// Polarity inside the neutral band: keyword doubling keeps zero.
	s := newTestScorer(fixedClassifier{polarity: 0.05})
	if got := s.Score(now, items); got != 0 {
		t.Errorf("expected score 0, got %d", got)
	}
}

func TestScore_NegativeHeadline(t *testing.T) {
	now := time.Now().UTC()
	items := []model.NewsItem{
		{Title: "Stocks slide on weak outlook", Published: now.Add(-time.Hour)},
	}
	s := newTestScorer(fixedClassifier{polarity: -0.4})
	if got := s.Score(now, items); got != -1 {
		t.Errorf("expected score -1, got %d", got)
	}
}

func TestScore_PrefixCap(t *testing.T) {
	// Eleven fresh positive headlines without keywords: only the first
	// ten may contribute.
	now := time.Now().UTC()
	items := make([]model.NewsItem, 11)
	for i := range items {
		items[i] = model.NewsItem{Title: "markets climb", Published: now.Add(-time.Minute)}
	}
	s := newTestScorer(fixedClassifier{polarity: 0.9})
	if got := s.Score(now, items); got != 10 {
		t.Errorf("expected prefix-capped score 10, got %d", got)
	}
}

func TestScore_DropsStaleAndUndated(t *testing.T) {
	now := time.Now().UTC()
	items := []model.NewsItem{
		{Title: "fresh headline", Published: now.Add(-23 * time.Hour)},
		{Title: "stale headline", Published: now.Add(-25 * time.Hour)},
		{Title: "undated headline"}, // zero publish time
	}
	s := newTestScorer(fixedClassifier{polarity: 0.9})
	if got := s.Score(now, items); got != 1 {
		t.Errorf("expected only the fresh headline to count, got %d", got)
	}
}

func TestScoreFeed_FaultDegradesToNeutral(t *testing.T) {
	s := newTestScorer(fixedClassifier{polarity: 0.9})
	if got := s.ScoreFeed(context.Background(), failingFeed{}); got != 0 {
		t.Errorf("feed fault must score neutral 0, got %d", got)
	}
}

func TestScore_KeywordMatchIsCaseInsensitive(t *testing.T) {
	now := time.Now().UTC()
	items := []model.NewsItem{
		{Title: "DOLLAR weakens sharply", Published: now.Add(-time.Hour)},
	}
	s := newTestScorer(fixedClassifier{polarity: -0.6})
	if got := s.Score(now, items); got != -2 {
		t.Errorf("expected doubled -2, got %d", got)
	}
}
