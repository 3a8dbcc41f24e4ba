package sink

import (
	"testing"
	"time"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

func sampleRecord() *model.ReportRecord {
	ts := time.Date(2024, 6, 1, 12, 5, 0, 0, time.UTC)
	snap := &model.IndicatorSnapshot{
		CurrentPrice: 2415.321,
		VWAP:         2410.5,
		RSI:          31.2,
		BBUpper:      2430,
		BBLower:      2400,
		MACDHist:     0.5,
		MACDSignal:   0.1,
		SMA50:        2390,
		Volume:       31000,
	}
	entry := 99.955
	tp := 100.333333
	sl := 99.8
	dec := &model.TradingDecision{
		Kind:       model.DecisionBuy,
		Entry:      &entry,
		TakeProfit: &tp,
		StopLoss:   &sl,
		RiskRatio:  "1:1.5",
		Logic:      []string{"Technical buy signal", "Bullish trend"},
	}
	return model.NewReportRecord(ts, snap, 2, dec)
}

func TestRow_HeaderOrderAndLength(t *testing.T) {
	row := Row(sampleRecord())
	if len(row) != len(Header) {
		t.Fatalf("row has %d cells, header has %d", len(row), len(Header))
	}
	if row[0] != "2024-06-01T12:05:00Z" {
		t.Errorf("unexpected timestamp cell: %v", row[0])
	}
	if row[11] != "BUY" {
		t.Errorf("unexpected decision cell: %v", row[11])
	}
	if row[16] != "Technical buy signal | Bullish trend" {
		t.Errorf("unexpected logic cell: %v", row[16])
	}
}

func TestRow_MonetaryRoundingHalfUp(t *testing.T) {
	row := Row(sampleRecord())
	// 99.955 must round to 99.96, which naive float math gets wrong.
	if got := row[12].(float64); got != 99.96 {
		t.Errorf("entry: expected 99.96, got %v", got)
	}
	if got := row[13].(float64); got != 100.33 {
		t.Errorf("take profit: expected 100.33, got %v", got)
	}
	if got := row[14].(float64); got != 99.8 {
		t.Errorf("stop loss: expected 99.8, got %v", got)
	}
}

func TestRow_ErrorRecordHasEmptyCells(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 5, 0, 0, time.UTC)
	dec := &model.TradingDecision{Kind: model.DecisionError, Logic: []string{"No technical data"}}
	row := Row(model.NewReportRecord(ts, nil, 0, dec))

	for _, i := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 12, 13, 14} {
		if row[i] != "" {
			t.Errorf("cell %d (%s) should be empty, got %v", i, Header[i], row[i])
		}
	}
	if row[11] != "ERROR" {
		t.Errorf("unexpected decision cell: %v", row[11])
	}
}

func TestPartition(t *testing.T) {
	ts := time.Date(2024, 6, 1, 23, 59, 0, 0, time.FixedZone("UTC+7", 7*3600))
	// 23:59 UTC+7 is 16:59 UTC: still June 1st.
	if got := Partition(ts); got != "2024-06-01" {
		t.Errorf("expected 2024-06-01, got %s", got)
	}
}
