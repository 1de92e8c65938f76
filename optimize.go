package kriterion

import (
	"math"
	"math/rand"
	"time"

	eaopt "github.com/MaxHalford/eaopt"
	"github.com/jinzhu/copier"
	"github.com/tantralabs/logger"

	"github.com/quantlabs/kriterion/models"
)

// OptimizeWindows searches for the pair of SMA window lengths that maximizes
// the Kelly fraction of the resulting trade list, using an OES evolutionary
// minimizer over the (short, long) vector. The RNG is seeded so a given bar
// series always yields the same windows.
//
// The base backtest is left untouched; the winner comes back as a populated
// copy carrying the best windows plus the trades, stats and Kelly fraction of
// the winning run.
func OptimizeWindows(bars []*models.Bar, base models.Backtest, nSteps uint) models.Backtest {
	currentRunUUID = time.Now()

	evaluate := func(windows []float64) float64 {
		trades, err := Simulate(bars, windowLength(windows[0]), windowLength(windows[1]))
		if err != nil {
			return math.Inf(1)
		}
		stats := CollectStats(trades)
		kelly := KellyFraction(stats.NumWins, stats.TotalTrades, stats.TotalGainFromWins, stats.TotalLossFromLosses)
		// eaopt minimizes
		return -kelly
	}

	ga, err := eaopt.NewOES(50, nSteps, 10, 0.05, false, nil)
	if err != nil {
		logger.Error(err)
		return base
	}
	ga.GA.RNG = rand.New(rand.NewSource(42))

	x, y, err := ga.Minimize(evaluate, []float64{float64(base.ShortWindow), float64(base.LongWindow)})
	if err != nil {
		logger.Error(err)
		return base
	}

	var best models.Backtest
	copier.Copy(&best, &base)
	best.ShortWindow, best.LongWindow = windowLength(x[0]), windowLength(x[1])
	// windowLength keeps both windows positive, so this run cannot fail.
	best.Trades, _ = Simulate(bars, best.ShortWindow, best.LongWindow)
	best.Stats = CollectStats(best.Trades)
	best.Kelly = KellyFraction(best.Stats.NumWins, best.Stats.TotalTrades, best.Stats.TotalGainFromWins, best.Stats.TotalLossFromLosses)
	best.Summary = SummarizeTrades(best.Trades)
	best.Summary.KellyFraction = best.Kelly

	logger.Infof("Best windows %v/%v with kelly %.5f\n", best.ShortWindow, best.LongWindow, -y)
	return best
}

func windowLength(x float64) int {
	w := int(math.Round(x))
	if w < 1 {
		w = 1
	}
	return w
}
