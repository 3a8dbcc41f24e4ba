package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cariantohs/xaut-trading-bot/internal/calculator"
	"github.com/cariantohs/xaut-trading-bot/internal/config"
	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// Collector fetches a price series and computes the indicator snapshot.
//
// Any indicator whose minimum window is not met makes the whole
// snapshot unavailable: the decision engine reads every field, so a
// partially-populated snapshot has no consumer.
type Collector struct {
	fetcher    Fetcher
	instrument string
	bar        string
	limit      int
	params     config.Indicators
	log        *zap.SugaredLogger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, instrument, bar string, limit int, params config.Indicators, log *zap.SugaredLogger) *Collector {
	return &Collector{
		fetcher:    fetcher,
		instrument: instrument,
		bar:        bar,
		limit:      limit,
		params:     params,
		log:        log,
	}
}

// Collect fetches candles and computes all indicators from the series
// tail. Only the latest value of each indicator is returned.
func (c *Collector) Collect(ctx context.Context) (*model.IndicatorSnapshot, error) {
	candles, err := c.fetcher.FetchCandles(ctx, c.instrument, c.bar, c.limit)
	if err != nil {
		return nil, fmt.Errorf("fetch candles: %w", err)
	}
	series := &model.PriceSeries{
		Instrument: c.instrument,
		Bar:        c.bar,
		Candles:    candles,
		FetchedAt:  time.Now().UTC(),
	}
	snap, err := c.Compute(series)
	if err != nil {
		return nil, err
	}
	c.log.Debugw("snapshot computed",
		"instrument", c.instrument,
		"candles", len(candles),
		"price", snap.CurrentPrice,
		"rsi", snap.RSI,
	)
	return snap, nil
}

// Compute derives the snapshot from an already-fetched series.
func (c *Collector) Compute(series *model.PriceSeries) (*model.IndicatorSnapshot, error) {
	last, ok := series.Last()
	if !ok {
		return nil, fmt.Errorf("empty price series")
	}
	closes := series.Closes()
	p := c.params

	vwap, err := calculator.CalculateVWAP(series.Candles)
	if err != nil {
		return nil, fmt.Errorf("vwap: %w", err)
	}
	rsi, err := calculator.CalculateRSI(closes, p.RSIPeriod)
	if err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	bbUpper, bbLower, err := calculator.CalculateBollinger(closes, p.BBWindow, p.BBDev)
	if err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}
	macdHist, macdSignal, err := calculator.CalculateMACD(closes, p.MACDFast, p.MACDSlow, p.MACDSignal)
	if err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}
	sma, err := calculator.CalculateSMA(closes, p.SMAPeriod)
	if err != nil {
		return nil, fmt.Errorf("sma%d: %w", p.SMAPeriod, err)
	}

	return &model.IndicatorSnapshot{
		CurrentPrice: last.Close,
		VWAP:         vwap,
		RSI:          rsi,
		BBUpper:      bbUpper,
		BBLower:      bbLower,
		MACDHist:     macdHist,
		MACDSignal:   macdSignal,
		SMA50:        sma,
		Volume:       last.Volume,
	}, nil
}
