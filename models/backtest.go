package models

// Backtest carries one run: the crossover parameters going in and the
// trades, statistics and Kelly fraction coming out. Runs share nothing, so
// evaluating many symbols concurrently is safe as long as each goroutine
// owns its Backtest.
type Backtest struct {
	Name        string
	Symbol      string
	ShortWindow int
	LongWindow  int
	LogBacktest bool

	Trades  []Trade
	Stats   TradeStatistics
	Summary BacktestSummary
	Kelly   float64
	Result  map[string]interface{}
}
