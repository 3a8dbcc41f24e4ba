// Package sink persists one ReportRecord per analysis cycle,
// partitioned by UTC calendar date. Monetary fields (entry, take
// profit, stop loss) are rounded to two decimals here, at the
// serialization boundary; the engine output keeps full precision.
package sink

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// Header is the first row of every new daily partition.
var Header = []string{
	"Timestamp", "Price", "VWAP", "RSI", "BB Upper", "BB Lower",
	"MACD Hist", "MACD Signal", "SMA50", "Volume", "News Score",
	"Decision", "Entry", "Take Profit", "Stop Loss", "Risk Ratio", "Logic",
}

// Sink accepts one report record per cycle, append-only.
type Sink interface {
	Append(ctx context.Context, rec *model.ReportRecord) error
	Close() error
}

// Partition returns the daily partition name for a timestamp.
func Partition(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}

// Row renders a record as spreadsheet cells in Header order. Nil
// numerics become empty cells.
func Row(rec *model.ReportRecord) []interface{} {
	entry, tp, sl := roundedTrio(rec)
	return []interface{}{
		rec.Timestamp.UTC().Format(time.RFC3339),
		cell(rec.Price),
		cell(rec.VWAP),
		cell(rec.RSI),
		cell(rec.BBUpper),
		cell(rec.BBLower),
		cell(rec.MACDHist),
		cell(rec.MACDSignal),
		cell(rec.SMA50),
		cell(rec.Volume),
		rec.NewsScore,
		string(rec.Decision),
		cell(entry),
		cell(tp),
		cell(sl),
		rec.RiskRatio,
		rec.LogicLine(),
	}
}

// roundedTrio returns the monetary fields rounded to two decimals.
// decimal avoids the float truncation of math.Round(v*100)/100 on
// values like 99.955.
func roundedTrio(rec *model.ReportRecord) (entry, tp, sl *float64) {
	return round2(rec.Entry), round2(rec.TakeProfit), round2(rec.StopLoss)
}

func round2(v *float64) *float64 {
	if v == nil {
		return nil
	}
	f, _ := decimal.NewFromFloat(*v).Round(2).Float64()
	return &f
}

func cell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
