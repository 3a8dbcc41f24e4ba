package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/cariantohs/xaut-trading-bot/internal/model"
)

func TestCalculateVWAP_SingleCandle(t *testing.T) {
	c := model.Candle{Time: time.Now(), High: 110, Low: 90, Close: 100, Volume: 5000}
	vwap, err := CalculateVWAP([]model.Candle{c})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (110.0 + 90.0 + 100.0) / 3
	if math.Abs(vwap-want) > 1e-9 {
		t.Errorf("single-candle VWAP should equal typical price %v, got %v", want, vwap)
	}
}

func TestCalculateVWAP_VolumeWeighting(t *testing.T) {
	candles := []model.Candle{
		{High: 100, Low: 100, Close: 100, Volume: 1000},
		{High: 200, Low: 200, Close: 200, Volume: 3000},
	}
	vwap, err := CalculateVWAP(candles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (100*1000 + 200*3000) / 4000 = 175
	if math.Abs(vwap-175) > 1e-9 {
		t.Errorf("expected 175, got %v", vwap)
	}
}

func TestCalculateVWAP_Empty(t *testing.T) {
	if _, err := CalculateVWAP(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestCalculateVWAP_ZeroVolume(t *testing.T) {
	candles := []model.Candle{{High: 100, Low: 100, Close: 100, Volume: 0}}
	if _, err := CalculateVWAP(candles); err == nil {
		t.Error("expected error for zero total volume")
	}
}
