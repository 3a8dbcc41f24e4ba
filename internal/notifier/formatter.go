package notifier

import (
	"fmt"
	"strings"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

var decisionEmoji = map[model.DecisionKind]string{
	model.DecisionBuy:   "🟢",
	model.DecisionSell:  "🔴",
	model.DecisionHold:  "⚪",
	model.DecisionError: "⚠️",
}

// FormatReport formats a cycle report into a Telegram HTML message.
func FormatReport(instrument string, rec *model.ReportRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>%s</b> | %s\n\n",
		decisionEmoji[rec.Decision], rec.Decision, rec.Timestamp.UTC().Format("2006-01-02 15:04 UTC")))
	b.WriteString(fmt.Sprintf("Instrument: %s\n", instrument))

	if rec.Price != nil {
		b.WriteString(fmt.Sprintf("Price: %.2f | VWAP: %.2f\n", *rec.Price, *rec.VWAP))
		b.WriteString(fmt.Sprintf("RSI: %.1f | SMA50: %.2f\n", *rec.RSI, *rec.SMA50))
		b.WriteString(fmt.Sprintf("BB: %.2f ~ %.2f\n", *rec.BBLower, *rec.BBUpper))
		b.WriteString(fmt.Sprintf("MACD hist: %.4f | signal: %.4f\n", *rec.MACDHist, *rec.MACDSignal))
		b.WriteString(fmt.Sprintf("Volume: %.0f\n", *rec.Volume))
	}
	b.WriteString(fmt.Sprintf("News score: %+d\n", rec.NewsScore))

	if rec.Entry != nil {
		b.WriteString(fmt.Sprintf("\nEntry: %.2f\n", *rec.Entry))
		b.WriteString(fmt.Sprintf("Take profit: %.2f\n", *rec.TakeProfit))
		b.WriteString(fmt.Sprintf("Stop loss: %.2f\n", *rec.StopLoss))
		b.WriteString(fmt.Sprintf("Risk ratio: %s\n", rec.RiskRatio))
	}

	b.WriteString(fmt.Sprintf("\nLogic: %s\n", rec.LogicLine()))
	return b.String()
}
