// Package kriterion evaluates a simple-moving-average crossover rule
// against historical daily bars and sizes the result with the Kelly
// criterion. Indicators come from github.com/markcheno/go-talib.
package kriterion

import (
	talib "github.com/markcheno/go-talib"

	"github.com/quantlabs/kriterion/models"
)

// GetSma calculates the Simple Moving Average of the close price for a given
// time period. Entries before index inTimePeriod-1 are warmup and undefined.
func GetSma(close []float64, inTimePeriod int) []float64 {
	return talib.Sma(close, inTimePeriod)
}

// GetEma calculates the Exponential Moving Average of the close price for a
// given time period, seeded with the SMA of the first period.
func GetEma(close []float64, inTimePeriod int) []float64 {
	return talib.Ema(close, inTimePeriod)
}

// ClosePrices extracts the close series from a bar slice.
func ClosePrices(bars []*models.Bar) []float64 {
	close := make([]float64, len(bars))
	for i := range bars {
		close[i] = bars[i].Close
	}
	return close
}
