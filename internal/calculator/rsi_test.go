package calculator

import (
	"errors"
	"testing"
)

func TestCalculateRSI_Bounds(t *testing.T) {
	// A long mixed series must stay within [0, 100].
	closes := make([]float64, 60)
	price := 2400.0
	for i := range closes {
		if i%3 == 0 {
			price *= 1.002
		} else {
			price *= 0.999
		}
		closes[i] = price
	}
	rsi, err := CalculateRSI(closes, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi < 0 || rsi > 100 {
		t.Errorf("RSI out of bounds: %v", rsi)
	}
}

func TestCalculateRSI_AllGains(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	rsi, err := CalculateRSI(closes, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 100 {
		t.Errorf("expected RSI 100 for monotonic gains, got %v", rsi)
	}
}

func TestCalculateRSI_AllLosses(t *testing.T) {
	closes := []float64{8, 7, 6, 5, 4, 3, 2, 1}
	rsi, err := CalculateRSI(closes, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rsi != 0 {
		t.Errorf("expected RSI 0 for monotonic losses, got %v", rsi)
	}
}

func TestCalculateRSI_Insufficient(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6, 7} // need period+1 = 8
	if _, err := CalculateRSI(closes, 7); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}
