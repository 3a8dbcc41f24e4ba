package collector

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/cariantohs/xaut-trading-bot/internal/calculator"
	"github.com/cariantohs/xaut-trading-bot/internal/config"
)

func testParams() config.Indicators {
	return config.Indicators{
		RSIPeriod:  7,
		BBWindow:   20,
		BBDev:      2,
		MACDFast:   5,
		MACDSlow:   13,
		MACDSignal: 1,
		SMAPeriod:  50,
	}
}

func newTestCollector(f Fetcher, limit int) *Collector {
	return NewCollector(f, "XAUT-USDT-SWAP", "5m", limit, testParams(), zap.NewNop().Sugar())
}

func TestCollect_FullSnapshot(t *testing.T) {
	candles := GenerateCandles(2400, 60)
	c := newTestCollector(&MockFetcher{Candles: candles}, 60)

	snap, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := candles[len(candles)-1]
	if snap.CurrentPrice != last.Close {
		t.Errorf("current price must be the latest close: got %v want %v", snap.CurrentPrice, last.Close)
	}
	if snap.Volume != last.Volume {
		t.Errorf("volume must come from the latest candle: got %v want %v", snap.Volume, last.Volume)
	}
	if snap.RSI < 0 || snap.RSI > 100 {
		t.Errorf("RSI out of bounds: %v", snap.RSI)
	}
	if snap.BBUpper < snap.BBLower {
		t.Errorf("upper band below lower band: %v < %v", snap.BBUpper, snap.BBLower)
	}
	if snap.VWAP <= 0 || snap.SMA50 <= 0 {
		t.Errorf("expected positive VWAP and SMA50, got %v / %v", snap.VWAP, snap.SMA50)
	}
}

func TestCollect_SeriesTooShort(t *testing.T) {
	// 30 candles satisfy RSI/Bollinger/MACD but not SMA50: the whole
	// snapshot must be reported unavailable.
	c := newTestCollector(&MockFetcher{Candles: GenerateCandles(2400, 30)}, 30)

	_, err := c.Collect(context.Background())
	if err == nil {
		t.Fatal("expected error for a 30-candle series")
	}
	if !errors.Is(err, calculator.ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestCollect_FetchFailure(t *testing.T) {
	c := newTestCollector(&MockFetcher{Err: errors.New("exchange unreachable")}, 60)
	if _, err := c.Collect(context.Background()); err == nil {
		t.Fatal("expected fetch error to propagate")
	}
}
