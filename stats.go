package kriterion

import (
	"gonum.org/v1/gonum/stat"

	"github.com/quantlabs/kriterion/models"
)

// CollectStats folds a trade list into the four aggregates the Kelly
// estimator consumes. A trade with zero profit counts as a loss of zero
// magnitude, so NumWins plus losing trades always equals TotalTrades.
func CollectStats(trades []models.Trade) models.TradeStatistics {
	stats := models.TradeStatistics{TotalTrades: len(trades)}
	for _, trade := range trades {
		if trade.ProfitLoss > 0 {
			stats.NumWins++
			stats.TotalGainFromWins += trade.ProfitLoss
		} else {
			stats.TotalLossFromLosses += -trade.ProfitLoss
		}
	}
	return stats
}

// SummarizeTrades derives the reporting view of a trade list: win rate,
// profit factor and the mean/stddev of per-trade P/L. KellyFraction is left
// zero here; RunBacktest fills it from the estimator.
func SummarizeTrades(trades []models.Trade) models.BacktestSummary {
	stats := CollectStats(trades)
	summary := models.BacktestSummary{
		TotalTrades:   stats.TotalTrades,
		WinningTrades: stats.NumWins,
		LosingTrades:  stats.TotalTrades - stats.NumWins,
		TotalGain:     stats.TotalGainFromWins,
		TotalLoss:     stats.TotalLossFromLosses,
		NetProfit:     stats.TotalGainFromWins - stats.TotalLossFromLosses,
	}
	if summary.TotalTrades == 0 {
		return summary
	}

	summary.WinRate = float64(summary.WinningTrades) / float64(summary.TotalTrades)
	if summary.TotalLoss > 0 {
		summary.ProfitFactor = summary.TotalGain / summary.TotalLoss
	}

	profitLoss := make([]float64, len(trades))
	for i := range trades {
		profitLoss[i] = trades[i].ProfitLoss
	}
	mean, std := stat.MeanStdDev(profitLoss, nil)
	summary.AverageTrade = mean
	if len(trades) > 1 {
		summary.TradeStdDev = std
	}
	return summary
}
