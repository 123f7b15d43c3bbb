package calculator

import "CryptoSentinel/internal/model"

// VWAPSeries computes the volume-weighted average price, cumulative from the
// start of the series: sum(typical price * volume) / sum(volume) over candles
// 0..i. The source data is a single finite window, so VWAP is deliberately
// whole-series cumulative rather than reset per session. A position is missing
// only while the cumulative volume is still zero.
func VWAPSeries(series []model.Candle) []model.Value {
	out := make([]model.Value, len(series))
	var cumPV, cumVol float64
	for i, c := range series {
		cumPV += c.TypicalPrice() * c.Volume
		cumVol += c.Volume
		if cumVol > 0 {
			out[i] = model.Defined(cumPV / cumVol)
		}
	}
	return out
}
