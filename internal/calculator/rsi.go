package calculator

import "CryptoSentinel/internal/model"

// RSISeries computes the Wilder-smoothed RSI over the given window. The first
// value needs window close-to-close changes, so positions 0..window-1 are
// missing and position window carries the seed computed from the simple
// average gain/loss. A window with zero average loss yields 100, zero average
// gain yields 0; the result is always within [0, 100].
func RSISeries(closes []float64, window int) []model.Value {
	out := make([]model.Value, len(closes))
	if window <= 0 || len(closes) < window+1 {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change // make positive
		}
	}
	avgGain /= float64(window)
	avgLoss /= float64(window)
	out[window] = model.Defined(rsiValue(avgGain, avgLoss))

	for i := window + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(window-1) + gain) / float64(window)
		avgLoss = (avgLoss*float64(window-1) + loss) / float64(window)
		out[i] = model.Defined(rsiValue(avgGain, avgLoss))
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
