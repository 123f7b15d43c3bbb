package calculator

import "CryptoSentinel/internal/model"

// EMASeries computes the exponential moving average of closes with the given
// window. The first window-1 positions are missing; position window-1 is seeded
// with the simple average of the first window closes, after which the standard
// smoothing with multiplier 2/(window+1) applies.
func EMASeries(closes []float64, window int) []model.Value {
	out := make([]model.Value, len(closes))
	if window <= 0 || len(closes) < window {
		return out
	}

	sum := 0.0
	for i := 0; i < window; i++ {
		sum += closes[i]
	}
	ema := sum / float64(window)
	out[window-1] = model.Defined(ema)

	multiplier := 2.0 / float64(window+1)
	for i := window; i < len(closes); i++ {
		ema = closes[i]*multiplier + ema*(1-multiplier)
		out[i] = model.Defined(ema)
	}
	return out
}
