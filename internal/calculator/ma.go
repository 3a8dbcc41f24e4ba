package calculator

import (
	"errors"
	"fmt"
)

// CalculateSMA computes the simple moving average of the last `period`
// prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, fmt.Errorf("%w: need %d prices, have %d", ErrInsufficientData, period, len(prices))
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// CalculateEMA computes the exponential moving average series with
// smoothing alpha = 2/(period+1), seeded with the first price. The
// returned slice has the same length as the input.
func CalculateEMA(prices []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(prices) == 0 {
		return nil, ErrInsufficientData
	}
	alpha := 2.0 / (float64(period) + 1.0)
	ema := make([]float64, len(prices))
	ema[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		ema[i] = alpha*prices[i] + (1-alpha)*ema[i-1]
	}
	return ema, nil
}
