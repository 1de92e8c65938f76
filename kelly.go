package kriterion

import (
	"math"

	"github.com/tantralabs/logger"
)

// KellyFraction turns aggregate trade statistics into the Kelly-optimal
// fraction of capital to risk, f* = W - (1-W)/R. Every degenerate or
// inconsistent input maps to 0.0 ("no edge, no stake") rather than an error,
// and the result is clamped at zero so a negative edge never reports a
// negative stake.
func KellyFraction(numWins int, totalTrades int, totalGainFromWins float64, totalLossFromLosses float64) float64 {
	if totalTrades <= 0 {
		logger.Info("Total trades must be greater than zero for Kelly calculation.")
		return 0.0
	}

	winProbability := float64(numWins) / float64(totalTrades)
	numLosses := totalTrades - numWins

	if numLosses > 0 && totalLossFromLosses <= 0 {
		logger.Info("Total loss from losses must be positive if there are losing trades.")
		return 0.0
	}
	if numWins > 0 && totalGainFromWins <= 0 {
		logger.Info("Total gain from wins must be positive if there are winning trades.")
		return 0.0
	}

	avgGain := 0.0
	if numWins > 0 {
		avgGain = totalGainFromWins / float64(numWins)
	}
	avgLoss := 0.0
	if numLosses > 0 {
		avgLoss = totalLossFromLosses / float64(numLosses)
	}

	if avgLoss == 0 {
		if numWins > 0 {
			// No losing trades, so R is effectively infinite and f*
			// approaches W. We report W itself, not 1.0. A hard cap below
			// 1.0 (0.5 say) might be safer; left unresolved.
			logger.Info("No average loss from losing trades. Assuming infinite R for Kelly calculation.")
			return math.Max(0.0, winProbability)
		}
		return 0.0
	}

	// Guarded above via totalGainFromWins, but kept explicit so the ratio
	// below can never divide by zero.
	if avgGain == 0 && numWins > 0 {
		logger.Info("Average gain from winning trades is zero despite having wins. Cannot calculate R.")
		return 0.0
	}

	winLossRatio := avgGain / avgLoss
	kelly := winProbability - (1-winProbability)/winLossRatio
	return math.Max(0.0, kelly)
}
