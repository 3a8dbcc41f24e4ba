package model

import (
	"testing"
	"time"
)

func TestNewReportRecord_AbsentSnapshot(t *testing.T) {
	dec := &TradingDecision{Kind: DecisionError, Logic: []string{"No technical data"}}
	rec := NewReportRecord(time.Now().UTC(), nil, 0, dec)

	for name, p := range map[string]*float64{
		"price": rec.Price, "vwap": rec.VWAP, "rsi": rec.RSI,
		"bb_upper": rec.BBUpper, "bb_lower": rec.BBLower,
		"macd_hist": rec.MACDHist, "macd_signal": rec.MACDSignal,
		"sma50": rec.SMA50, "volume": rec.Volume,
		"entry": rec.Entry, "take_profit": rec.TakeProfit, "stop_loss": rec.StopLoss,
	} {
		if p != nil {
			t.Errorf("%s should be nil for an absent snapshot, got %v", name, *p)
		}
	}
	if rec.Decision != DecisionError {
		t.Errorf("unexpected decision: %s", rec.Decision)
	}
	if rec.LogicLine() != "No technical data" {
		t.Errorf("unexpected logic line: %q", rec.LogicLine())
	}
}

func TestNewReportRecord_CopiesSnapshotAndDecision(t *testing.T) {
	snap := &IndicatorSnapshot{
		CurrentPrice: 100, VWAP: 99, RSI: 30, BBUpper: 110, BBLower: 100,
		MACDHist: 1, MACDSignal: 0, SMA50: 95, Volume: 25000,
	}
	entry := 99.95
	dec := &TradingDecision{
		Kind:  DecisionBuy,
		Entry: &entry,
		Logic: []string{"Technical buy signal", "Bullish trend"},
	}
	rec := NewReportRecord(time.Now().UTC(), snap, 2, dec)

	if rec.Price == nil || *rec.Price != 100 {
		t.Errorf("price not copied: %v", rec.Price)
	}
	if rec.NewsScore != 2 {
		t.Errorf("news score not copied: %d", rec.NewsScore)
	}
	if rec.Entry == nil || *rec.Entry != 99.95 {
		t.Errorf("entry not copied: %v", rec.Entry)
	}
	if rec.LogicLine() != "Technical buy signal | Bullish trend" {
		t.Errorf("unexpected logic line: %q", rec.LogicLine())
	}
}
