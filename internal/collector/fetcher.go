package collector

import (
	"context"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// Fetcher defines the interface for retrieving market candles.
// Implementations must return candles ordered oldest to newest.
type Fetcher interface {
	FetchCandles(ctx context.Context, instrument, bar string, limit int) ([]model.Candle, error)
	Name() string
}
