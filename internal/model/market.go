package model

import "time"

// Candle represents a single candlestick bar. Volume is quote-currency
// volume (volCcyQuote on OKX), which is what the decision volume
// threshold is calibrated against.
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Typical returns the typical price (high+low+close)/3.
func (c Candle) Typical() float64 {
	return (c.High + c.Low + c.Close) / 3
}

// PriceSeries holds candles ordered oldest to newest with
// non-decreasing timestamps.
type PriceSeries struct {
	Instrument string
	Bar        string
	Candles    []Candle
	FetchedAt  time.Time
}

// Closes extracts closing prices in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		closes[i] = c.Close
	}
	return closes
}

// Last returns the most recent candle, or false if the series is empty.
func (s *PriceSeries) Last() (Candle, bool) {
	if len(s.Candles) == 0 {
		return Candle{}, false
	}
	return s.Candles[len(s.Candles)-1], true
}
