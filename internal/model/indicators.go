package model

// IndicatorSnapshot holds the latest value of each technical indicator
// computed from one PriceSeries. It is read-only after creation and
// valid only for the series it was computed from.
//
// An unavailable snapshot (upstream fetch failure or a series too short
// for any indicator window) is represented by a nil *IndicatorSnapshot,
// never by zero-valued fields.
type IndicatorSnapshot struct {
	CurrentPrice float64
	VWAP         float64
	RSI          float64 // 0..100
	BBUpper      float64
	BBLower      float64
	MACDHist     float64
	MACDSignal   float64
	SMA50        float64
	Volume       float64 // quote volume of the latest candle
}
