package models

// Trade is a closed round trip produced by the simulator. Immutable once
// appended to the trade list.
type Trade struct {
	EntryDate  int64   `csv:"entry_date"`
	EntryPrice float64 `csv:"entry_price"`
	ExitDate   int64   `csv:"exit_date"`
	ExitPrice  float64 `csv:"exit_price"`
	ProfitLoss float64 `csv:"profit_loss"`
	ForcedExit bool    `csv:"forced_exit"`
}
