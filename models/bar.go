package models

import "sort"

// Bar is one daily candle. The csv and db tags let the same struct be
// loaded by gocsv and selected by sqlx.
type Bar struct {
	Timestamp int64   `csv:"timestamp" db:"timestamp"`
	Open      float64 `csv:"open" db:"open"`
	High      float64 `csv:"high" db:"high"`
	Low       float64 `csv:"low" db:"low"`
	Close     float64 `csv:"close" db:"close"`
	Volume    float64 `csv:"volume" db:"volume"`
}

// SortBars orders bars by timestamp ascending and drops duplicate
// timestamps, keeping the first occurrence. Every bar source runs its
// result through here so the simulator always sees a strictly increasing
// series.
func SortBars(bars []*Bar) []*Bar {
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Timestamp < bars[j].Timestamp })
	deduped := bars[:0]
	var lastTimestamp int64
	for i, bar := range bars {
		if i > 0 && bar.Timestamp == lastTimestamp {
			continue
		}
		deduped = append(deduped, bar)
		lastTimestamp = bar.Timestamp
	}
	return deduped
}
