package kriterion

import (
	"errors"
	"fmt"
	"time"

	"github.com/tantralabs/logger"

	"github.com/quantlabs/kriterion/models"
)

// Position states for the crossover machine. The state at a bar is a pure
// function of the two averages, except on a tie, which holds the prior state.
const (
	positionOut = iota
	positionLong
)

// ErrInvalidWindow is returned when a caller asks for a non-positive SMA
// window. Degenerate data (too few bars) is not an error, it just produces
// no trades.
var ErrInvalidWindow = errors.New("sma window lengths must be positive")

// Simulate runs the SMA crossover rule over a time-ordered bar series and
// returns the closed trades in entry order. At most one position is open at
// a time; a position still open at the end of the data is force-closed at
// the final bar.
func Simulate(bars []*models.Bar, shortWindow int, longWindow int) ([]models.Trade, error) {
	if shortWindow <= 0 || longWindow <= 0 {
		return nil, ErrInvalidWindow
	}

	// Both averages are defined from this index on; earlier bars are warmup
	// and never enter the state machine.
	trim := shortWindow
	if longWindow > trim {
		trim = longWindow
	}
	trim--

	trades := []models.Trade{}
	if len(bars) <= trim {
		return trades, nil
	}

	close := ClosePrices(bars)
	shortSma := GetSma(close, shortWindow)
	longSma := GetSma(close, longWindow)

	state := positionOut
	var entryDate int64
	var entryPrice float64

	for i := trim; i < len(bars); i++ {
		prev := state
		if shortSma[i] > longSma[i] {
			state = positionLong
		} else if shortSma[i] < longSma[i] {
			state = positionOut
		}
		// short == long holds prev; a tie is not a crossing

		if prev == positionOut && state == positionLong {
			entryDate = bars[i].Timestamp
			entryPrice = bars[i].Close
		} else if prev == positionLong && state == positionOut {
			trades = append(trades, models.Trade{
				EntryDate:  entryDate,
				EntryPrice: entryPrice,
				ExitDate:   bars[i].Timestamp,
				ExitPrice:  bars[i].Close,
				ProfitLoss: bars[i].Close - entryPrice,
			})
		}
	}

	// Final flush: no sell signal ever came, close at the last bar anyway.
	if state == positionLong {
		last := bars[len(bars)-1]
		trades = append(trades, models.Trade{
			EntryDate:  entryDate,
			EntryPrice: entryPrice,
			ExitDate:   last.Timestamp,
			ExitPrice:  last.Close,
			ProfitLoss: last.Close - entryPrice,
			ForcedExit: true,
		})
		logger.Infof("Forced exit at end of data at %v. P/L: %.2f\n", last.Timestamp, last.Close-entryPrice)
	}

	return trades, nil
}

// RunBacktest simulates the crossover rule for one Backtest, folds the trade
// list into statistics and derives the Kelly fraction. The input bars are
// never mutated, so independent runs can share a bar slice.
func RunBacktest(bars []*models.Bar, bt *models.Backtest) error {
	start := time.Now()
	logger.Info("Running", len(bars), "bars with windows", bt.ShortWindow, "/", bt.LongWindow)

	trades, err := Simulate(bars, bt.ShortWindow, bt.LongWindow)
	if err != nil {
		return err
	}

	bt.Trades = trades
	bt.Stats = CollectStats(trades)
	bt.Kelly = KellyFraction(bt.Stats.NumWins, bt.Stats.TotalTrades, bt.Stats.TotalGainFromWins, bt.Stats.TotalLossFromLosses)
	bt.Summary = SummarizeTrades(trades)
	bt.Summary.KellyFraction = bt.Kelly

	fmt.Printf("Total Trades %d \n Winning Trades %d \n Losing Trades %d \n Total Gain %0.4f \n Total Loss %0.4f \n Net Profit %0.4f \n Profit Factor %0.4f \n Kelly Fraction %0.4f \n",
		bt.Summary.TotalTrades,
		bt.Summary.WinningTrades,
		bt.Summary.LosingTrades,
		bt.Summary.TotalGain,
		bt.Summary.TotalLoss,
		bt.Summary.NetProfit,
		bt.Summary.ProfitFactor,
		bt.Summary.KellyFraction,
	)

	bt.Result = map[string]interface{}{
		"total_trades":   bt.Summary.TotalTrades,
		"winning_trades": bt.Summary.WinningTrades,
		"losing_trades":  bt.Summary.LosingTrades,
		"net_profit":     bt.Summary.NetProfit,
		"profit_factor":  bt.Summary.ProfitFactor,
		"kelly_fraction": bt.Summary.KellyFraction,
		"short_window":   bt.ShortWindow,
		"long_window":    bt.LongWindow,
	}

	logger.Info("Execution Speed", time.Since(start))
	return nil
}
