package kriterion

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBars(t *testing.T) {
	bars, err := LoadBars(filepath.Join("testdata", "bars.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 3 {
		t.Fatal("Expected 3 bars after sorting and deduping, got", len(bars))
	}
	if bars[0].Timestamp != 1 || bars[2].Timestamp != 3 {
		t.Error("Bars should come back in timestamp order")
	}
	if bars[1].Close != 10 {
		t.Error("Expected the first duplicate to win, got close", bars[1].Close)
	}
}

func TestLoadBarsMissingFile(t *testing.T) {
	if _, err := LoadBars(filepath.Join("testdata", "nope.csv")); err == nil {
		t.Error("A missing data file should surface as an error")
	}
}

func TestLoadConfiguration(t *testing.T) {
	config, err := LoadConfiguration(filepath.Join("testdata", "config.json"), false)
	if err != nil {
		t.Fatal(err)
	}
	if config.Symbol != "AMD" {
		t.Error("Expected symbol AMD, got", config.Symbol)
	}
	if config.ShortWindow != 50 || config.LongWindow != 200 {
		t.Error("Expected 50/200 windows, got", config.ShortWindow, config.LongWindow)
	}
	if !config.LogBacktest {
		t.Error("Expected log_backtest to be set")
	}

	if _, err := LoadConfiguration(filepath.Join("testdata", "nope.json"), false); !os.IsNotExist(err) {
		t.Error("A missing config file should surface as a not-exist error, got", err)
	}
}
