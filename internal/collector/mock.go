package collector

import (
	"context"
	"time"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Candles []model.Candle
	Err     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchCandles(_ context.Context, _, _ string, limit int) ([]model.Candle, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Candles != nil {
		return m.Candles, nil
	}
	return GenerateCandles(2400, limit), nil
}

// GenerateCandles builds a deterministic drifting series for tests.
func GenerateCandles(basePrice float64, count int) []model.Candle {
	candles := make([]model.Candle, count)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.0005)
		candles[i] = model.Candle{
			Time:   start.Add(time.Duration(i) * 5 * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.002,
			Low:    p * 0.998,
			Close:  p,
			Volume: 25000,
		}
	}
	return candles
}
