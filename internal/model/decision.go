package model

import "strings"

// DecisionKind is the discrete trading recommendation.
type DecisionKind string

const (
	DecisionBuy   DecisionKind = "BUY"
	DecisionSell  DecisionKind = "SELL"
	DecisionHold  DecisionKind = "HOLD"
	DecisionError DecisionKind = "ERROR"
)

// TradingDecision is the output of the decision engine.
//
// Entry, TakeProfit and StopLoss are set iff Kind is BUY or SELL; a
// HOLD promoted by the sentiment override changes Kind itself, so a
// HOLD never carries prices. Prices retain full precision here;
// rounding happens at the sink boundary.
//
// RiskRatio is a fixed label chosen per decision branch. It is not
// derived from the actual entry/stop/target deltas.
type TradingDecision struct {
	Kind       DecisionKind
	Entry      *float64
	TakeProfit *float64
	StopLoss   *float64
	RiskRatio  string
	Logic      []string // ordered rationale trail
}

// LogicLine renders the rationale trail as a single pipe-separated line.
func (d *TradingDecision) LogicLine() string {
	return strings.Join(d.Logic, " | ")
}
