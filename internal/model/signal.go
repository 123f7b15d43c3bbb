package model

// Signal is the discrete trading decision for one candle.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// SignalSummary is the reduction of a signal series: counts per signal plus a
// qualitative label. Recomputed on demand, never stored.
type SignalSummary struct {
	Buy   int
	Sell  int
	Hold  int
	Label string
}

// Total returns the number of signals the summary covers.
func (s SignalSummary) Total() int {
	return s.Buy + s.Sell + s.Hold
}
