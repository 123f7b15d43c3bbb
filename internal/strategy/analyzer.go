package strategy

import "CryptoSentinel/internal/model"

// Summarize reduces a signal series to counts plus a qualitative label. The
// label follows a plurality rule: "bullish bias" when BUY strictly leads,
// "bearish bias" when SELL strictly leads, "neutral" otherwise (any tie
// resolves to neutral as the conservative default). An empty series yields
// all-zero counts and "no data".
func Summarize(signals []model.Signal) model.SignalSummary {
	var s model.SignalSummary
	for _, sig := range signals {
		switch sig {
		case model.SignalBuy:
			s.Buy++
		case model.SignalSell:
			s.Sell++
		default:
			s.Hold++
		}
	}

	switch {
	case s.Total() == 0:
		s.Label = "no data"
	case s.Buy > s.Sell && s.Buy > s.Hold:
		s.Label = "bullish bias"
	case s.Sell > s.Buy && s.Sell > s.Hold:
		s.Label = "bearish bias"
	default:
		s.Label = "neutral"
	}
	return s
}
