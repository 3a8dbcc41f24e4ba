package calculator

import (
	"errors"
	"fmt"
	"math"
)

// CalculateBollinger computes the Bollinger band scalars over the last
// `window` closes: SMA(window) +/- dev standard deviations. Population
// standard deviation, matching the conventional band definition.
func CalculateBollinger(closes []float64, window int, dev float64) (upper, lower float64, err error) {
	if window <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	if len(closes) < window {
		return 0, 0, fmt.Errorf("%w: need %d closes, have %d", ErrInsufficientData, window, len(closes))
	}
	mid, err := CalculateSMA(closes, window)
	if err != nil {
		return 0, 0, err
	}
	var sq float64
	for i := len(closes) - window; i < len(closes); i++ {
		d := closes[i] - mid
		sq += d * d
	}
	sd := math.Sqrt(sq / float64(window))
	return mid + dev*sd, mid - dev*sd, nil
}
