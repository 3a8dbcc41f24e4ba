package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateMACD_SignalWindowOne(t *testing.T) {
	// With a signal window of 1 the signal line equals the MACD line,
	// so the histogram is identically zero.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 2400 + float64(i)*0.5
	}
	hist, signal, err := CalculateMACD(closes, 5, 13, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(hist) > 1e-9 {
		t.Errorf("histogram must be zero with signal window 1, got %v", hist)
	}
	// In a steady uptrend the fast EMA leads the slow one.
	if signal <= 0 {
		t.Errorf("expected positive MACD line in an uptrend, got %v", signal)
	}
}

func TestCalculateMACD_WiderSignalWindow(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 2400 * (1 + 0.01*math.Sin(float64(i)/3))
	}
	hist, signal, err := CalculateMACD(closes, 5, 13, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.IsNaN(hist) || math.IsNaN(signal) {
		t.Errorf("got NaN: hist=%v signal=%v", hist, signal)
	}
}

func TestCalculateMACD_Insufficient(t *testing.T) {
	closes := make([]float64, 13) // need slow+1 = 14
	if _, _, err := CalculateMACD(closes, 5, 13, 1); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
