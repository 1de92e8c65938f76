package kriterion

import (
	"math"
	"testing"
)

func TestGetSma(t *testing.T) {
	close := []float64{1, 2, 3, 4, 5}
	sma := GetSma(close, 2)

	if len(sma) != len(close) {
		t.Fatal("SMA should align to the input length, got", len(sma))
	}
	want := []float64{1.5, 2.5, 3.5, 4.5}
	for i, w := range want {
		if math.Abs(sma[i+1]-w) > 1e-12 {
			t.Error("SMA mismatch at index", i+1, "expected", w, "got", sma[i+1])
		}
	}
}

func TestGetEmaConstantSeries(t *testing.T) {
	close := []float64{5, 5, 5, 5, 5, 5}
	ema := GetEma(close, 3)
	for i := 2; i < len(ema); i++ {
		if math.Abs(ema[i]-5) > 1e-12 {
			t.Error("EMA of a constant series should be the constant, got", ema[i], "at", i)
		}
	}
}

func TestClosePrices(t *testing.T) {
	bars := makeBars(9.5, 10, 10.5)
	close := ClosePrices(bars)
	if len(close) != 3 || close[0] != 9.5 || close[2] != 10.5 {
		t.Error("Close extraction mismatch:", close)
	}
}
