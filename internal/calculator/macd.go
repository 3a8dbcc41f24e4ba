package calculator

import (
	"errors"
	"fmt"
)

// CalculateMACD computes the latest MACD histogram and signal values:
// macd line = EMA(fast) - EMA(slow), signal = EMA(macd line, signalWindow),
// histogram = macd line - signal. Requires at least slow+1 closes.
//
// With signalWindow=1 the signal line equals the MACD line and the
// histogram is identically zero.
func CalculateMACD(closes []float64, fast, slow, signalWindow int) (hist, signal float64, err error) {
	if fast <= 0 || slow <= 0 || signalWindow <= 0 {
		return 0, 0, errors.New("windows must be positive")
	}
	if len(closes) < slow+1 {
		return 0, 0, fmt.Errorf("%w: need %d closes, have %d", ErrInsufficientData, slow+1, len(closes))
	}

	fastEMA, err := CalculateEMA(closes, fast)
	if err != nil {
		return 0, 0, err
	}
	slowEMA, err := CalculateEMA(closes, slow)
	if err != nil {
		return 0, 0, err
	}

	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = fastEMA[i] - slowEMA[i]
	}
	sig, err := CalculateEMA(line, signalWindow)
	if err != nil {
		return 0, 0, err
	}

	last := len(closes) - 1
	return line[last] - sig[last], sig[last], nil
}
