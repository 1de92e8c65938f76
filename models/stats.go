package models

// TradeStatistics holds the four aggregates the Kelly estimator consumes.
// TotalTrades == NumWins + number of losing trades always holds; a trade
// with zero profit counts as a loss of zero magnitude.
type TradeStatistics struct {
	NumWins             int
	TotalTrades         int
	TotalGainFromWins   float64
	TotalLossFromLosses float64
}

// BacktestSummary is the reporting view of a finished run. Field names
// double as influx field keys via structs.Map.
type BacktestSummary struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64
	TotalGain     float64
	TotalLoss     float64
	NetProfit     float64
	ProfitFactor  float64
	AverageTrade  float64
	TradeStdDev   float64
	KellyFraction float64
}
