package model

import (
	"strings"
	"time"
)

// ReportRecord is the immutable flat aggregate produced once per cycle
// and handed to the sink. Numeric pointers are nil when the indicator
// snapshot was unavailable; the price trio is nil unless the decision
// is BUY or SELL.
type ReportRecord struct {
	Timestamp  time.Time
	Price      *float64
	VWAP       *float64
	RSI        *float64
	BBUpper    *float64
	BBLower    *float64
	MACDHist   *float64
	MACDSignal *float64
	SMA50      *float64
	Volume     *float64
	NewsScore  int
	Decision   DecisionKind
	Entry      *float64
	TakeProfit *float64
	StopLoss   *float64
	RiskRatio  string
	Logic      []string
}

// NewReportRecord assembles the per-cycle record. snap may be nil.
func NewReportRecord(ts time.Time, snap *IndicatorSnapshot, newsScore int, dec *TradingDecision) *ReportRecord {
	rec := &ReportRecord{
		Timestamp:  ts,
		NewsScore:  newsScore,
		Decision:   dec.Kind,
		Entry:      dec.Entry,
		TakeProfit: dec.TakeProfit,
		StopLoss:   dec.StopLoss,
		RiskRatio:  dec.RiskRatio,
		Logic:      dec.Logic,
	}
	if snap != nil {
		rec.Price = f64(snap.CurrentPrice)
		rec.VWAP = f64(snap.VWAP)
		rec.RSI = f64(snap.RSI)
		rec.BBUpper = f64(snap.BBUpper)
		rec.BBLower = f64(snap.BBLower)
		rec.MACDHist = f64(snap.MACDHist)
		rec.MACDSignal = f64(snap.MACDSignal)
		rec.SMA50 = f64(snap.SMA50)
		rec.Volume = f64(snap.Volume)
	}
	return rec
}

// LogicLine renders the rationale trail as a single pipe-separated line.
func (r *ReportRecord) LogicLine() string {
	return strings.Join(r.Logic, " | ")
}

func f64(v float64) *float64 { return &v }
