package kriterion

import (
	"math"
	"math/rand"
	"testing"
)

func TestKellyFractionNoTrades(t *testing.T) {
	if f := KellyFraction(0, 0, 0, 0); f != 0.0 {
		t.Error("No trades should yield no stake, got", f)
	}
	if f := KellyFraction(3, -1, 300, 0); f != 0.0 {
		t.Error("Negative trade counts should yield no stake, got", f)
	}
}

func TestKellyFractionAllWins(t *testing.T) {
	// No losing trades: R is unbounded and the fraction approximates the
	// win probability, not 1.0 by formula.
	if f := KellyFraction(5, 5, 100.0, 0.0); f != 1.0 {
		t.Error("Five wins out of five should report the win probability 1.0, got", f)
	}
	if f := KellyFraction(3, 4, 100.0, 0.0); f != 0.0 {
		t.Error("A losing trade with zero loss magnitude is inconsistent, got", f)
	}
}

func TestKellyFractionTextbook(t *testing.T) {
	// W=0.3, avg gain 100, avg loss 20, R=5 -> 0.3 - 0.7/5 = 0.16
	f := KellyFraction(3, 10, 300.0, 140.0)
	if math.Abs(f-0.16) > 1e-12 {
		t.Error("Expected 0.16, got", f)
	}
}

func TestKellyFractionNegativeEdgeClamped(t *testing.T) {
	// W=0.1, R=1 -> 0.1 - 0.9 = -0.8, clamped to zero
	if f := KellyFraction(1, 10, 10.0, 90.0); f != 0.0 {
		t.Error("A negative edge should report no stake, got", f)
	}
}

func TestKellyFractionInconsistentStats(t *testing.T) {
	if f := KellyFraction(3, 10, 0.0, 140.0); f != 0.0 {
		t.Error("Wins without gain are inconsistent, got", f)
	}
	if f := KellyFraction(3, 10, 300.0, 0.0); f != 0.0 {
		t.Error("Losses without loss magnitude are inconsistent, got", f)
	}
}

func TestKellyFractionAllLosses(t *testing.T) {
	if f := KellyFraction(0, 5, 0.0, 50.0); f != 0.0 {
		t.Error("No wins should yield no stake, got", f)
	}
}

func TestKellyFractionAlwaysInUnitInterval(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		totalTrades := rng.Intn(40)
		numWins := 0
		if totalTrades > 0 {
			numWins = rng.Intn(totalTrades + 1)
		}
		gain := rng.Float64() * 1000
		loss := rng.Float64() * 1000
		if rng.Intn(4) == 0 {
			gain = 0
		}
		if rng.Intn(4) == 0 {
			loss = 0
		}

		f := KellyFraction(numWins, totalTrades, gain, loss)
		if math.IsNaN(f) || f < 0.0 || f > 1.0 {
			t.Fatal("Kelly fraction out of [0,1] for", numWins, totalTrades, gain, loss, "->", f)
		}
	}
}
