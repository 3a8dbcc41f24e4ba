package calculator

import (
	"errors"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

// CalculateVWAP computes the volume-weighted average price over the
// entire supplied window: sum(typical*volume) / sum(volume), where
// typical = (high+low+close)/3. This is cumulative-to-date, not a
// rolling window, so the result depends on how much history the caller
// supplies.
func CalculateVWAP(candles []model.Candle) (float64, error) {
	if len(candles) == 0 {
		return 0, ErrInsufficientData
	}
	var sumTPV, sumVol float64
	for _, c := range candles {
		sumTPV += c.Typical() * c.Volume
		sumVol += c.Volume
	}
	if sumVol == 0 {
		return 0, errors.New("zero total volume")
	}
	return sumTPV / sumVol, nil
}
