// Package strategy implements the multi-factor decision engine: two
// 4-condition vote vectors over the indicator snapshot, branch pricing,
// a sentiment override for technical HOLDs, and a trend annotation.
package strategy

import (
	"math"

	"github.com/cariantohs/xaut-trading-bot/internal/config"
	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// Entry/stop/target offsets as fractions of the close. Entries are
// shaded slightly against the signal direction (limit fills); stops are
// bounded by the opposing Bollinger band.
const (
	buyEntryFactor       = 0.9995
	buyStopFactor        = 0.998
	buyTakeProfitFactor  = 1.003
	buyTakeProfitBoosted = 1.005

	sellEntryFactor       = 1.0005
	sellStopFactor        = 1.002
	sellTakeProfitFactor  = 0.997
	sellTakeProfitBoosted = 0.995

	overrideBuyStopFactor        = 0.998
	overrideBuyTakeProfitFactor  = 1.004
	overrideSellStopFactor       = 1.002
	overrideSellTakeProfitFactor = 0.996
)

// Risk ratio labels are fixed per branch, not computed from the actual
// price deltas.
const (
	riskRatioDefault  = "1:1.5"
	riskRatioBoosted  = "1:2.5"
	riskRatioOverride = "1:2"
)

// Engine turns an indicator snapshot and a news score into a decision.
type Engine struct {
	cfg config.Decision
}

// NewEngine creates an Engine with the given thresholds.
func NewEngine(cfg config.Decision) *Engine {
	return &Engine{cfg: cfg}
}

// Evaluate is a pure, deterministic function of (snapshot, newsScore).
// A nil snapshot means the upstream market data fetch failed and yields
// a terminal ERROR decision.
func (e *Engine) Evaluate(snap *model.IndicatorSnapshot, newsScore int) *model.TradingDecision {
	if snap == nil {
		return &model.TradingDecision{
			Kind:  model.DecisionError,
			Logic: []string{"No technical data"},
		}
	}

	cp := snap.CurrentPrice

	buyVotes := countTrue(
		cp <= snap.BBLower && snap.RSI < e.cfg.RSIOversold,
		snap.MACDHist > snap.MACDSignal,
		snap.Volume > e.cfg.VolumeFloor,
		cp > snap.VWAP,
	)
	sellVotes := countTrue(
		cp >= snap.BBUpper && snap.RSI > e.cfg.RSIOverbought,
		snap.MACDHist < snap.MACDSignal,
		snap.Volume > e.cfg.VolumeFloor,
		cp < snap.VWAP,
	)

	var dec *model.TradingDecision
	switch {
	// BUY is checked first and wins any simultaneous satisfaction of
	// both vectors.
	case buyVotes >= e.cfg.MinVotes:
		dec = e.priceBuy(snap, newsScore)
	case sellVotes >= e.cfg.MinVotes:
		dec = e.priceSell(snap, newsScore)
	default:
		dec = e.holdOrOverride(snap, newsScore)
	}

	// Trend annotation is evaluated last, for every non-HOLD outcome
	// including post-override promotions.
	if dec.Kind != model.DecisionHold {
		if cp > snap.SMA50 {
			dec.Logic = append(dec.Logic, "Bullish trend")
		} else {
			dec.Logic = append(dec.Logic, "Bearish trend")
		}
	}
	return dec
}

func (e *Engine) priceBuy(snap *model.IndicatorSnapshot, newsScore int) *model.TradingDecision {
	cp := snap.CurrentPrice
	tp := cp * buyTakeProfitFactor
	rr := riskRatioDefault
	if newsScore > e.cfg.NewsBoost {
		tp = cp * buyTakeProfitBoosted
		rr = riskRatioBoosted
	}
	return &model.TradingDecision{
		Kind:       model.DecisionBuy,
		Entry:      ptr(cp * buyEntryFactor),
		StopLoss:   ptr(math.Max(snap.BBLower, cp*buyStopFactor)),
		TakeProfit: ptr(tp),
		RiskRatio:  rr,
		Logic:      []string{"Technical buy signal"},
	}
}

func (e *Engine) priceSell(snap *model.IndicatorSnapshot, newsScore int) *model.TradingDecision {
	cp := snap.CurrentPrice
	tp := cp * sellTakeProfitFactor
	rr := riskRatioDefault
	if newsScore < -e.cfg.NewsBoost {
		tp = cp * sellTakeProfitBoosted
		rr = riskRatioBoosted
	}
	return &model.TradingDecision{
		Kind:       model.DecisionSell,
		Entry:      ptr(cp * sellEntryFactor),
		StopLoss:   ptr(math.Min(snap.BBUpper, cp*sellStopFactor)),
		TakeProfit: ptr(tp),
		RiskRatio:  rr,
		Logic:      []string{"Technical sell signal"},
	}
}

// holdOrOverride yields HOLD unless the news score alone is strong
// enough to promote the decision. The override only exists on this
// path: a technical BUY/SELL is never overridden.
func (e *Engine) holdOrOverride(snap *model.IndicatorSnapshot, newsScore int) *model.TradingDecision {
	cp := snap.CurrentPrice
	logic := []string{"No strong signal"}
	switch {
	case newsScore >= e.cfg.NewsOverride:
		return &model.TradingDecision{
			Kind:       model.DecisionBuy,
			Entry:      ptr(cp),
			StopLoss:   ptr(cp * overrideBuyStopFactor),
			TakeProfit: ptr(cp * overrideBuyTakeProfitFactor),
			RiskRatio:  riskRatioOverride,
			Logic:      append(logic, "Strong bullish news"),
		}
	case newsScore <= -e.cfg.NewsOverride:
		return &model.TradingDecision{
			Kind:       model.DecisionSell,
			Entry:      ptr(cp),
			StopLoss:   ptr(cp * overrideSellStopFactor),
			TakeProfit: ptr(cp * overrideSellTakeProfitFactor),
			RiskRatio:  riskRatioOverride,
			Logic:      append(logic, "Strong bearish news"),
		}
	default:
		return &model.TradingDecision{
			Kind:  model.DecisionHold,
			Logic: logic,
		}
	}
}

func countTrue(conds ...bool) int {
	n := 0
	for _, c := range conds {
		if c {
			n++
		}
	}
	return n
}

func ptr(v float64) *float64 { return &v }
